package config

import (
	"net"
	"net/http"
	"time"
)

// NewSourceClient создает HTTP-клиент для запросов к внешнему API.
// Таймаут клиента ограничивает весь запрос, включая чтение тела.
// Редиректы не выполняются: ответ 3xx возвращается вызывающему как есть.
func NewSourceClient(cfg SummaryConfig) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          25,
		MaxIdleConnsPerHost:   25,
		IdleConnTimeout:       5 * time.Minute,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.FetchTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
