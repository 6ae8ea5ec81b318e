package models

import "fmt"

// Summary накапливает статистику по одному отделу
type Summary struct {
	Male        int               `json:"male"`
	Female      int               `json:"female"`
	AgeRange    string            `json:"ageRange"`
	Hair        map[string]int    `json:"hair"`
	AddressUser map[string]string `json:"addressUser"`
}

// NewSummary создает пустую сводку. Диапазон возраста начинается с нуля,
// а не с возраста первого пользователя.
func NewSummary(firstAge int) *Summary {
	return &Summary{
		AgeRange:    fmt.Sprintf("0-%d", firstAge),
		Hair:        make(map[string]int),
		AddressUser: make(map[string]string),
	}
}

// Total возвращает количество обработанных записей отдела
func (s *Summary) Total() int {
	return s.Male + s.Female
}

// SummaryTable - результат одного запуска: отдел -> сводка
type SummaryTable map[string]*Summary
