// Package models содержит структуры данных, которыми обмениваются слои приложения.
package models

// ParsedInput представляет сырую строку, разделённую на числовую часть и единицу
type ParsedInput struct {
	RawValue string
	RawUnit  string
}

// ValidatedInput представляет проверенное значение с каноническим кодом единицы
type ValidatedInput struct {
	Value float64
	Unit  string
}

// ConversionResult представляет тело успешного ответа /api/convert
type ConversionResult struct {
	InitNum    float64 `json:"initNum"`
	InitUnit   string  `json:"initUnit"`
	ReturnNum  float64 `json:"returnNum"`
	ReturnUnit string  `json:"returnUnit"`
	String     string  `json:"string"`
}

// ErrorResponse представляет тело ответа с ошибкой
type ErrorResponse struct {
	String string `json:"string"`
}

// UnitInfo описывает единицу измерения в ответе /api/units
type UnitInfo struct {
	Code     string `json:"code"`
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
	Paired   string `json:"paired"`
}
