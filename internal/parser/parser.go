// Package parser разбивает строку запроса на числовую часть и единицу измерения.
package parser

import (
	"strings"

	"github.com/InQaaaaGit/metric_converter/internal/models"
)

// DefaultValue подставляется, когда во входной строке нет числа
const DefaultValue = "1"

// Parse отделяет ведущую последовательность символов числа (знак минус в начале,
// цифры, '.', '/') от остатка строки. Остаток целиком считается единицей измерения, поэтому
// единица может стоять только в конце строки.
func Parse(raw string) models.ParsedInput {
	raw = strings.TrimSpace(raw)

	start := 0
	if strings.HasPrefix(raw, "-") {
		start = 1
	}

	end := strings.IndexFunc(raw[start:], func(r rune) bool {
		return !isValueRune(r)
	})
	if end < 0 {
		end = len(raw)
	} else {
		end += start
	}

	value := raw[:end]
	if value == "" {
		value = DefaultValue
	}

	return models.ParsedInput{
		RawValue: value,
		RawUnit:  raw[end:],
	}
}

func isValueRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '/'
}
