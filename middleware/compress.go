package middleware

import (
	"io"
	"net/http"
	"strings"

	"github.com/LilVoxy/department_summary/processor"
)

// CompressMiddleware сжимает ответ snappy, если клиент прислал
// Accept-Encoding: x-snappy-framed
func CompressMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !acceptsSnappy(r) {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Encoding", processor.SnappyEncoding)
		w.Header().Add("Vary", "Accept-Encoding")
		w.Header().Del("Content-Length")

		sw := processor.NewStreamCompressor(w)
		defer sw.Close()
		next.ServeHTTP(&compressedWriter{ResponseWriter: w, w: sw}, r)
	})
}

func acceptsSnappy(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		if strings.TrimSpace(strings.SplitN(enc, ";", 2)[0]) == processor.SnappyEncoding {
			return true
		}
	}
	return false
}

type compressedWriter struct {
	http.ResponseWriter
	w io.Writer
}

func (cw *compressedWriter) Write(p []byte) (int, error) {
	return cw.w.Write(p)
}
