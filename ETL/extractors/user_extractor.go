package extractors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/LilVoxy/department_summary/ETL/models"
	"github.com/LilVoxy/department_summary/ETL/utils"
)

// Максимальный размер тела ответа внешнего API
const maxResponseBytes = 32 << 20

// UserExtractor получает пользователей из внешнего HTTP API
type UserExtractor struct {
	client    *http.Client
	sourceURL string
	logger    *utils.ETLLogger
}

// NewUserExtractor создает новый экземпляр UserExtractor
func NewUserExtractor(client *http.Client, sourceURL string, logger *utils.ETLLogger) *UserExtractor {
	return &UserExtractor{
		client:    client,
		sourceURL: sourceURL,
		logger:    logger,
	}
}

// ExtractUsers выполняет один GET-запрос и возвращает список пользователей.
// Неуспешный статус возвращается как *UpstreamHTTPError, остальные сбои
// оборачивают ErrUnexpected.
func (e *UserExtractor) ExtractUsers(ctx context.Context) ([]models.User, error) {
	e.logger.Debug("Запрос пользователей: %s", e.sourceURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.sourceURL, nil)
	if err != nil {
		return nil, unexpected("не удалось создать запрос: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Error("Ошибка при запросе пользователей: %v", err)
		return nil, unexpected("ошибка запроса: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e.logger.Error("Error response %d while requesting %q", resp.StatusCode, e.sourceURL)
		// Дочитываем тело, чтобы соединение вернулось в пул
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &UpstreamHTTPError{StatusCode: resp.StatusCode, URL: e.sourceURL}
	}

	users, err := decodeUsers(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		e.logger.Error("Ошибка при разборе ответа: %v", err)
		return nil, err
	}

	e.logger.Debug("Получено %d пользователей", len(users))
	return users, nil
}

// decodeUsers разбирает тело ответа. Запись без любого из полей,
// от которых зависит агрегация, считается несовпадением схемы.
func decodeUsers(r io.Reader) ([]models.User, error) {
	var body models.UsersResponse
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, unexpected("некорректный JSON: %v", err)
	}
	if body.Users == nil {
		return nil, unexpected("в ответе отсутствует поле users")
	}

	raw := *body.Users
	users := make([]models.User, 0, len(raw))
	for i, item := range raw {
		user, err := decodeUser(item)
		if err != nil {
			return nil, unexpected("пользователь #%d: %v", i, err)
		}
		users = append(users, user)
	}
	return users, nil
}

// requiredUser отмечает обязательные поля: nil означает, что поле
// отсутствует или равно null
type requiredUser struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Age       *int    `json:"age"`
	Gender    *string `json:"gender"`
	Hair      *struct {
		Color *string `json:"color"`
	} `json:"hair"`
	Address *struct {
		PostalCode *string `json:"postalCode"`
	} `json:"address"`
	Company *struct {
		Department *string `json:"department"`
	} `json:"company"`
}

func decodeUser(item json.RawMessage) (models.User, error) {
	if len(bytes.TrimSpace(item)) == 0 || bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
		return models.User{}, errors.New("пустая запись")
	}

	var req requiredUser
	if err := json.Unmarshal(item, &req); err != nil {
		return models.User{}, fmt.Errorf("некорректная запись: %w", err)
	}
	if missing := req.missingFields(); len(missing) > 0 {
		return models.User{}, fmt.Errorf("отсутствуют поля: %s", strings.Join(missing, ", "))
	}
	if *req.Age < 0 {
		return models.User{}, fmt.Errorf("отрицательный возраст %d", *req.Age)
	}

	var user models.User
	if err := json.Unmarshal(item, &user); err != nil {
		return models.User{}, fmt.Errorf("некорректная запись: %w", err)
	}
	return user, nil
}

func (r requiredUser) missingFields() []string {
	var missing []string
	check := func(name string, present bool) {
		if !present {
			missing = append(missing, name)
		}
	}
	check("firstName", r.FirstName != nil)
	check("lastName", r.LastName != nil)
	check("age", r.Age != nil)
	check("gender", r.Gender != nil)
	check("hair.color", r.Hair != nil && r.Hair.Color != nil)
	check("address.postalCode", r.Address != nil && r.Address.PostalCode != nil)
	check("company.department", r.Company != nil && r.Company.Department != nil)
	return missing
}
