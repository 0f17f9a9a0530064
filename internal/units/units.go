// Package units содержит статическую таблицу поддерживаемых единиц измерения.
// Таблица неизменяема и безопасна для конкурентного чтения без синхронизации.
package units

import "strings"

// Канонические коды единиц
const (
	Mile      = "mi"
	Kilometre = "km"
	Gallon    = "gal"
	Litre     = "L"
	Pound     = "lbs"
	Kilogram  = "kg"
)

// Definition описывает одну единицу измерения и её парную единицу.
type Definition struct {
	Code     string  // Канонический код для вывода
	Singular string  // Название в единственном числе
	Plural   string  // Название во множественном числе
	Paired   string  // Код единицы, в которую выполняется конвертация
	Factor   float64 // Размер единицы в базовой единице семейства (метр, литр, килограмм)
}

// Name возвращает название единицы для указанного значения.
// Единственное число используется только для значения ровно 1.
func (d Definition) Name(value float64) string {
	if value == 1 {
		return d.Singular
	}
	return d.Plural
}

var ordered = []Definition{
	{Code: Mile, Singular: "mile", Plural: "miles", Paired: Kilometre, Factor: 1609.344},
	{Code: Kilometre, Singular: "kilometre", Plural: "kilometres", Paired: Mile, Factor: 1000},
	{Code: Gallon, Singular: "gallon", Plural: "gallons", Paired: Litre, Factor: 3.785411784},
	{Code: Litre, Singular: "litre", Plural: "litres", Paired: Gallon, Factor: 1},
	{Code: Pound, Singular: "pound", Plural: "pounds", Paired: Kilogram, Factor: 0.45359237},
	{Code: Kilogram, Singular: "kilogram", Plural: "kilograms", Paired: Pound, Factor: 1},
}

// table индексирует определения по коду в нижнем регистре
var table = func() map[string]Definition {
	m := make(map[string]Definition, len(ordered))
	for _, d := range ordered {
		m[strings.ToLower(d.Code)] = d
	}
	return m
}()

// Lookup ищет единицу без учёта регистра.
func Lookup(code string) (Definition, bool) {
	d, ok := table[strings.ToLower(code)]
	return d, ok
}

// Canonical возвращает канонический код единицы или пустую строку, если единица неизвестна.
func Canonical(code string) string {
	if d, ok := Lookup(code); ok {
		return d.Code
	}
	return ""
}

// Paired возвращает код парной единицы.
func Paired(code string) (string, bool) {
	d, ok := Lookup(code)
	if !ok {
		return "", false
	}
	return d.Paired, true
}

// All возвращает копию таблицы в фиксированном порядке.
func All() []Definition {
	out := make([]Definition, len(ordered))
	copy(out, ordered)
	return out
}

// Codes возвращает канонические коды всех единиц.
func Codes() []string {
	codes := make([]string, 0, len(ordered))
	for _, d := range ordered {
		codes = append(codes, d.Code)
	}
	return codes
}
