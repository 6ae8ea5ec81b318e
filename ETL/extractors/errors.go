package extractors

import (
	"errors"
	"fmt"
)

// ErrUnexpected оборачивает любые сбои получения или разбора данных,
// кроме ответа внешнего API с неуспешным статусом.
var ErrUnexpected = errors.New("unexpected error while fetching users")

// UpstreamHTTPError возвращается, когда внешний API ответил неуспешным статусом
type UpstreamHTTPError struct {
	StatusCode int
	URL        string
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}

func unexpected(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnexpected, fmt.Sprintf(format, args...))
}
