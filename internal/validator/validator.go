// Package validator проверяет разобранный ввод и вычисляет числовое значение.
// Все ошибки накапливаются, после чего возвращается одна составная ошибка.
package validator

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strings"

	"github.com/InQaaaaGit/metric_converter/internal/models"
	"github.com/InQaaaaGit/metric_converter/internal/units"
)

// Коды ошибок в порядке проверки
const (
	CodeNumber = "number"
	CodeUnit   = "unit"
)

// KindInvalidInput классифицирует все ошибки валидации
const KindInvalidInput = "InvalidInput"

// ErrInvalidInput возвращается (через errors.Is) для любой ошибки валидации
var ErrInvalidInput = errors.New("invalid input")

// decimalRe принимает "5", "5.25", ".5" и "5."
var decimalRe = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)

// Error описывает проваленные проверки ввода.
type Error struct {
	Codes []string
}

// Error возвращает сообщение вида "invalid number and unit"
func (e *Error) Error() string {
	return "invalid " + strings.Join(e.Codes, " and ")
}

// Is позволяет сравнивать ошибку с ErrInvalidInput
func (e *Error) Is(target error) bool {
	return target == ErrInvalidInput
}

// Kind возвращает класс ошибки
func (e *Error) Kind() string {
	return KindInvalidInput
}

// Validate проверяет число и единицу. Число проверяется раньше единицы,
// и в сообщение попадают только проваленные проверки.
func Validate(parsed models.ParsedInput) (models.ValidatedInput, error) {
	var codes []string

	value, ok := resolve(parsed.RawValue)
	if !ok {
		codes = append(codes, CodeNumber)
	}

	unit := units.Canonical(strings.ToLower(parsed.RawUnit))
	if unit == "" {
		codes = append(codes, CodeUnit)
	}

	if len(codes) > 0 {
		return models.ValidatedInput{}, &Error{Codes: codes}
	}

	return models.ValidatedInput{Value: value, Unit: unit}, nil
}

// resolve вычисляет "a" или "a/b" как точное частное двух десятичных чисел.
// Пустой знаменатель ("1/") считается равным 1.
func resolve(raw string) (float64, bool) {
	parts := strings.Split(raw, "/")
	if len(parts) > 2 {
		return 0, false
	}

	num, ok := parseDecimal(parts[0])
	if !ok {
		return 0, false
	}

	den := big.NewRat(1, 1)
	if len(parts) == 2 && parts[1] != "" {
		den, ok = parseDecimal(parts[1])
		if !ok || den.Sign() == 0 {
			return 0, false
		}
	}

	value, _ := new(big.Rat).Quo(num, den).Float64()
	if math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func parseDecimal(s string) (*big.Rat, bool) {
	if !decimalRe.MatchString(s) {
		return nil, false
	}
	return new(big.Rat).SetString(strings.TrimSuffix(s, "."))
}
