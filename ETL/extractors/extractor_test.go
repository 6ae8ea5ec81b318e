package extractors

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LilVoxy/department_summary/ETL/config"
	"github.com/LilVoxy/department_summary/ETL/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersBody = `{
  "users": [
    {
      "id": 1,
      "firstName": "Emily",
      "lastName": "Johnson",
      "age": 28,
      "gender": "female",
      "hair": {"color": "Brown", "type": "Curly"},
      "address": {"address": "626 Main Street", "city": "Phoenix", "postalCode": "29112",
                  "coordinates": {"lat": -77.16, "lng": -92.08}, "country": "United States"},
      "bank": {"cardExpire": "03/26", "cardNumber": "9289760655481815", "cardType": "Elo", "currency": "CNY", "iban": "YPUXISOBI7TTHPK2BR3HAIXL"},
      "company": {"department": "Engineering", "name": "Dooley, Kozey and Cronin", "title": "Sales Manager"},
      "crypto": {"coin": "Bitcoin", "wallet": "0xb9fc2fe63b2a6c003f1c324c3bfa53259162181a", "network": "Ethereum (ERC20)"},
      "role": "admin"
    },
    {
      "id": 2,
      "firstName": "Michael",
      "lastName": "Williams",
      "age": 35,
      "gender": "male",
      "email": null,
      "hair": {"color": "Green", "type": "Straight"},
      "address": {"postalCode": "38807"},
      "company": {"department": "Support"},
      "extraField": {"ignored": true}
    }
  ],
  "total": 208,
  "skip": 0,
  "limit": 30
}`

// completeUser возвращает запись со всеми обязательными полями;
// override заменяет одно из них
func completeUser(override string) string {
	fields := map[string]string{
		"firstName": `"firstName": "A"`,
		"lastName":  `"lastName": "B"`,
		"age":       `"age": 30`,
		"gender":    `"gender": "male"`,
		"hair":      `"hair": {"color": "Black"}`,
		"address":   `"address": {"postalCode": "111"}`,
		"company":   `"company": {"department": "Eng"}`,
	}
	if override != "" {
		key := strings.Trim(strings.SplitN(override, ":", 2)[0], `" `)
		fields[key] = override
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func newTestExtractor(url string) *Extractor {
	return NewExtractor(&http.Client{Timeout: 2 * time.Second}, url, utils.NewNopLogger())
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtractDecodesUsers(t *testing.T) {
	srv := serve(t, http.StatusOK, usersBody)

	data, err := newTestExtractor(srv.URL).Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Users, 2)

	first := data.Users[0]
	assert.Equal(t, "Emily", first.FirstName)
	assert.Equal(t, "Johnson", first.LastName)
	assert.Equal(t, 28, first.Age)
	assert.Equal(t, "female", first.Gender)
	assert.Equal(t, "Brown", first.Hair.Color)
	assert.Equal(t, "Engineering", first.Company.Department)
	assert.Equal(t, "29112", first.Address.PostalCode)
	assert.Equal(t, "CNY", first.Bank.Currency)
	assert.Equal(t, "EmilyJohnson", first.FullName())

	assert.Equal(t, "Support", data.Users[1].Company.Department)
	assert.Equal(t, srv.URL, data.SourceURL)
	assert.False(t, data.ExtractedAt.IsZero())
}

func TestExtractUpstreamStatus(t *testing.T) {
	srv := serve(t, http.StatusInternalServerError, `{"message":"boom"}`)

	data, err := newTestExtractor(srv.URL).Extract(context.Background())
	require.Error(t, err)
	assert.Nil(t, data)

	var upstreamErr *UpstreamHTTPError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusInternalServerError, upstreamErr.StatusCode)
	assert.Equal(t, "API request failed with status 500", upstreamErr.Error())
	assert.False(t, errors.Is(err, ErrUnexpected))
}

func TestExtractRedirectIsUpstreamError(t *testing.T) {
	target := serve(t, http.StatusOK, usersBody)
	srv := httptest.NewServer(http.RedirectHandler(target.URL, http.StatusMovedPermanently))
	t.Cleanup(srv.Close)

	extractor := NewExtractor(config.NewSourceClient(config.DefaultSummaryConfig), srv.URL, utils.NewNopLogger())
	_, err := extractor.Extract(context.Background())
	require.Error(t, err)

	var upstreamErr *UpstreamHTTPError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusMovedPermanently, upstreamErr.StatusCode)
}

func TestExtractUnexpectedFailures(t *testing.T) {
	cases := map[string]string{
		"malformed json":     `{"users": [`,
		"missing users":      `{"total": 0}`,
		"null users":         `{"users": null}`,
		"wrong type":         `{"users": [{"age": "thirty"}]}`,
		"empty record":       `{"users": [{}]}`,
		"null record":        `{"users": [null]}`,
		"partial record":     `{"users": [{"age": 30, "gender": "male"}]}`,
		"missing department": `{"users": [` + completeUser(`"company": {"name": "Acme"}`) + `]}`,
		"missing hair color": `{"users": [` + completeUser(`"hair": {"type": "Curly"}`) + `]}`,
		"missing postal":     `{"users": [` + completeUser(`"address": {"city": "Phoenix"}`) + `]}`,
		"null gender":        `{"users": [` + completeUser(`"gender": null`) + `]}`,
		"negative age":       `{"users": [` + completeUser(`"age": -1`) + `]}`,
		"one bad of two":     `{"users": [` + completeUser("") + `, {}]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := serve(t, http.StatusOK, body)

			data, err := newTestExtractor(srv.URL).Extract(context.Background())
			require.Error(t, err)
			assert.Nil(t, data)
			assert.True(t, errors.Is(err, ErrUnexpected))
		})
	}
}

func TestExtractCompleteUserAccepted(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"users": [`+completeUser("")+`]}`)

	data, err := newTestExtractor(srv.URL).Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Users, 1)
	assert.Equal(t, "Eng", data.Users[0].Company.Department)
	assert.Equal(t, "111", data.Users[0].Address.PostalCode)
}

func TestExtractEmptyUsers(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"users": []}`)

	data, err := newTestExtractor(srv.URL).Extract(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Users)
}

func TestExtractNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestExtractor(url).Extract(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpected))
}

func TestExtractCancelledContext(t *testing.T) {
	srv := serve(t, http.StatusOK, usersBody)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestExtractor(srv.URL).Extract(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpected))
}
