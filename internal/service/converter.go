package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/InQaaaaGit/metric_converter/internal/converter"
	"github.com/InQaaaaGit/metric_converter/internal/models"
	"github.com/InQaaaaGit/metric_converter/internal/parser"
	"github.com/InQaaaaGit/metric_converter/internal/units"
	"github.com/InQaaaaGit/metric_converter/internal/validator"
	"go.uber.org/zap"
)

// ConversionService определяет интерфейс сервиса конвертации единиц
type ConversionService interface {
	Convert(ctx context.Context, input string) (models.ConversionResult, error)
	Units() []models.UnitInfo
}

// ConverterService реализует ConversionService
type ConverterService struct {
	logger *zap.Logger
}

// NewConverterService создает новый экземпляр ConverterService
func NewConverterService(logger *zap.Logger) *ConverterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConverterService{logger: logger}
}

// Convert разбирает строку, проверяет её и переводит значение в парную единицу.
// Ошибки валидации возвращаются как *validator.Error без обёртки.
func (s *ConverterService) Convert(ctx context.Context, input string) (models.ConversionResult, error) {
	if err := ctx.Err(); err != nil {
		return models.ConversionResult{}, err
	}

	parsed := parser.Parse(input)
	s.logger.Debug("Input parsed",
		zap.String("input", input),
		zap.String("raw_value", parsed.RawValue),
		zap.String("raw_unit", parsed.RawUnit))

	validated, err := validator.Validate(parsed)
	if err != nil {
		s.logger.Debug("Input rejected", zap.String("input", input), zap.Error(err))
		return models.ConversionResult{}, err
	}

	result, err := converter.Convert(validated.Value, validated.Unit)
	if errors.Is(err, converter.ErrOutOfRange) {
		// значение корректно записано, но его перевод не представим числом
		s.logger.Debug("Input rejected", zap.String("input", input), zap.Error(err))
		return models.ConversionResult{}, &validator.Error{Codes: []string{validator.CodeNumber}}
	}
	if err != nil {
		return models.ConversionResult{}, fmt.Errorf("convert %q: %w", input, err)
	}

	return result, nil
}

// Units возвращает описание всех поддерживаемых единиц
func (s *ConverterService) Units() []models.UnitInfo {
	defs := units.All()
	out := make([]models.UnitInfo, 0, len(defs))
	for _, d := range defs {
		out = append(out, models.UnitInfo{
			Code:     d.Code,
			Singular: d.Singular,
			Plural:   d.Plural,
			Paired:   d.Paired,
		})
	}
	return out
}
