package load

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/LilVoxy/department_summary/ETL/models"
)

// Loader выгружает готовую таблицу сводок
type Loader interface {
	LoadSummaries(summaries models.SummaryTable) error
}

// JSONLoader пишет таблицу сводок в writer как JSON-объект
type JSONLoader struct {
	w      io.Writer
	indent bool
}

// NewJSONLoader создает новый экземпляр JSONLoader
func NewJSONLoader(w io.Writer, indent bool) *JSONLoader {
	return &JSONLoader{w: w, indent: indent}
}

// LoadSummaries кодирует таблицу в writer
func (l *JSONLoader) LoadSummaries(summaries models.SummaryTable) error {
	if summaries == nil {
		summaries = models.SummaryTable{}
	}
	enc := json.NewEncoder(l.w)
	if l.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(summaries); err != nil {
		return fmt.Errorf("ошибка при кодировании сводок: %w", err)
	}
	return nil
}
