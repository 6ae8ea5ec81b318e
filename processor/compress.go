package processor

import (
	"io"

	"github.com/golang/snappy"
)

// SnappyEncoding - значение Content-Encoding для потокового формата snappy
const SnappyEncoding = "x-snappy-framed"

// NewStreamCompressor возвращает writer потокового формата snappy.
// Вызывающий обязан вызвать Close, чтобы сбросить буфер.
func NewStreamCompressor(w io.Writer) io.WriteCloser {
	return snappy.NewBufferedWriter(w)
}

// NewStreamDecompressor читает поток, записанный NewStreamCompressor
func NewStreamDecompressor(r io.Reader) io.Reader {
	return snappy.NewReader(r)
}
