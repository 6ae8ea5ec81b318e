package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LilVoxy/department_summary/ETL/models"
)

// Aggregate сворачивает пользователей в таблицу сводок по отделам.
// Записи обрабатываются в порядке следования.
func Aggregate(users []models.User) models.SummaryTable {
	summaries := make(models.SummaryTable)
	for _, user := range users {
		UpdateSummary(user, summaries)
	}
	return summaries
}

// UpdateSummary находит или создает сводку отдела пользователя и обновляет ее.
// Возвращает обновленную сводку.
func UpdateSummary(user models.User, summaries models.SummaryTable) *models.Summary {
	department := user.Company.Department
	summary, exists := summaries[department]
	if !exists {
		summary = models.NewSummary(user.Age)
		summaries[department] = summary
	}
	UpdateDepartment(user, summary)
	return summary
}

// UpdateDepartment учитывает одного пользователя в сводке отдела
func UpdateDepartment(user models.User, summary *models.Summary) {
	updateGender(user.Gender, summary)
	UpdateAgeRange(summary, user.Age)
	updateHair(user.Hair.Color, summary)
	updateAddress(user, summary)
}

// Любое значение, кроме точного "male", считается женским полом
func updateGender(gender string, summary *models.Summary) {
	if gender == "male" {
		summary.Male++
		return
	}
	summary.Female++
}

// UpdateAgeRange расширяет диапазон возраста, если age в него не попадает.
// Это не настоящий минимум/максимум: при выходе за верхнюю границу новым
// минимумом становится старый максимум, при выходе за нижнюю новым
// максимумом становится старый минимум.
func UpdateAgeRange(summary *models.Summary, age int) {
	minAge, maxAge, err := ParseAgeRange(summary.AgeRange)
	if err != nil {
		// Диапазон формирует только этот пакет, поэтому это нарушение инварианта
		panic(fmt.Sprintf("transform: поврежден диапазон возраста: %v", err))
	}

	switch {
	case age >= minAge && age <= maxAge:
		return
	case age > maxAge:
		summary.AgeRange = formatAgeRange(maxAge, age)
	default:
		summary.AgeRange = formatAgeRange(age, minAge)
	}
}

// ParseAgeRange разбирает строку вида "min-max"
func ParseAgeRange(ageRange string) (int, int, error) {
	parts := strings.Split(ageRange, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("ожидался формат min-max, получено %q", ageRange)
	}
	minAge, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("некорректная нижняя граница в %q: %w", ageRange, err)
	}
	maxAge, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("некорректная верхняя граница в %q: %w", ageRange, err)
	}
	return minAge, maxAge, nil
}

func formatAgeRange(minAge, maxAge int) string {
	return strconv.Itoa(minAge) + "-" + strconv.Itoa(maxAge)
}

func updateHair(color string, summary *models.Summary) {
	if summary.Hair == nil {
		summary.Hair = make(map[string]int)
	}
	summary.Hair[color]++
}

// Совпадающие имена перезаписывают почтовый индекс
func updateAddress(user models.User, summary *models.Summary) {
	if summary.AddressUser == nil {
		summary.AddressUser = make(map[string]string)
	}
	summary.AddressUser[user.FullName()] = user.Address.PostalCode
}
