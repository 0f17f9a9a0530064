// Package converter переводит значение в парную единицу и формирует итоговую фразу.
package converter

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/InQaaaaGit/metric_converter/internal/models"
	"github.com/InQaaaaGit/metric_converter/internal/units"
)

// Precision количество знаков после запятой в результатах
const Precision = 5

var (
	// ErrUnknownUnit возвращается, если код единицы отсутствует в таблице
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrOutOfRange возвращается, если результат перевода не помещается в float64
	ErrOutOfRange = errors.New("result out of range")
)

var scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(Precision), nil)

// Round округляет значение до Precision знаков, половины округляются от нуля.
// Округляется кратчайшая десятичная запись числа, а не его двоичное
// представление: Round(1.234565) == 1.23457.
func Round(v float64) float64 {
	// за пределами точности float64 дробной части уже нет
	if math.Abs(v) >= 1e15 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if !ok {
		return v
	}
	r.Mul(r, new(big.Rat).SetInt(scale))

	n := new(big.Int).Abs(r.Num())
	q, rem := new(big.Int).QuoRem(n, r.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(r.Denom()) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if q.Sign() == 0 {
		return 0 // убираем -0
	}
	if r.Sign() < 0 {
		q.Neg(q)
	}

	out, _ := new(big.Rat).SetFrac(q, scale).Float64()
	return out
}

// FormatNumber печатает число в кратчайшем десятичном виде: 10, 2.20462
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Convert переводит value из unit в парную единицу.
// unit должен быть каноническим кодом из таблицы единиц.
func Convert(value float64, unit string) (models.ConversionResult, error) {
	from, ok := units.Lookup(unit)
	if !ok {
		return models.ConversionResult{}, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	to, ok := units.Lookup(from.Paired)
	if !ok {
		return models.ConversionResult{}, fmt.Errorf("%w: %q", ErrUnknownUnit, from.Paired)
	}

	initNum := Round(value)
	returnNum := Round(initNum * from.Factor / to.Factor)
	if math.IsInf(returnNum, 0) || math.IsNaN(returnNum) {
		return models.ConversionResult{}, fmt.Errorf("%w: %s %s", ErrOutOfRange, FormatNumber(initNum), from.Code)
	}

	return models.ConversionResult{
		InitNum:    initNum,
		InitUnit:   from.Code,
		ReturnNum:  returnNum,
		ReturnUnit: to.Code,
		String: fmt.Sprintf("%s %s converts to %s %s",
			FormatNumber(initNum), from.Name(initNum),
			FormatNumber(returnNum), to.Name(returnNum)),
	}, nil
}
