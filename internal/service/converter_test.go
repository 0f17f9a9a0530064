package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/InQaaaaGit/metric_converter/internal/models"
	"github.com/InQaaaaGit/metric_converter/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConverterServiceConvert(t *testing.T) {
	svc := NewConverterService(zap.NewNop())

	tests := []struct {
		name    string
		input   string
		want    models.ConversionResult
		wantErr string
	}{
		{
			name:  "litres",
			input: "10L",
			want: models.ConversionResult{
				InitNum: 10, InitUnit: "L", ReturnNum: 2.64172, ReturnUnit: "gal",
				String: "10 litres converts to 2.64172 gallons",
			},
		},
		{
			name:  "default value",
			input: "kg",
			want: models.ConversionResult{
				InitNum: 1, InitUnit: "kg", ReturnNum: 2.20462, ReturnUnit: "lbs",
				String: "1 kilogram converts to 2.20462 pounds",
			},
		},
		{
			name:  "fraction",
			input: "1/5lbs",
			want: models.ConversionResult{
				InitNum: 0.2, InitUnit: "lbs", ReturnNum: 0.09072, ReturnUnit: "kg",
				String: "0.2 pounds converts to 0.09072 kilograms",
			},
		},
		{
			name:  "half rounds away from zero",
			input: "1.234565kg",
			want: models.ConversionResult{
				InitNum: 1.23457, InitUnit: "kg", ReturnNum: 2.72176, ReturnUnit: "lbs",
				String: "1.23457 kilograms converts to 2.72176 pounds",
			},
		},
		{
			name:  "trailing dot",
			input: "5.km",
			want: models.ConversionResult{
				InitNum: 5, InitUnit: "km", ReturnNum: 3.10686, ReturnUnit: "mi",
				String: "5 kilometres converts to 3.10686 miles",
			},
		},
		{name: "unknown unit", input: "32g", wantErr: "invalid unit"},
		{name: "overflowing value", input: "1" + strings.Repeat("0", 308) + "mi", wantErr: "invalid number"},
		{name: "double fraction", input: "3/7.2/4kg", wantErr: "invalid number"},
		{name: "both", input: "3/7.2/4kilomegagram", wantErr: "invalid number and unit"},
		{name: "empty", input: "", wantErr: "invalid unit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Convert(context.Background(), tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)

				var vErr *validator.Error
				assert.True(t, errors.As(err, &vErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverterServiceCanceledContext(t *testing.T) {
	svc := NewConverterService(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Convert(ctx, "1kg")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConverterServiceUnits(t *testing.T) {
	svc := NewConverterService(zap.NewNop())

	list := svc.Units()
	require.Len(t, list, 6)
	assert.Equal(t, models.UnitInfo{Code: "mi", Singular: "mile", Plural: "miles", Paired: "km"}, list[0])
	assert.Equal(t, "L", list[3].Code)
}

func TestConverterServiceConcurrent(t *testing.T) {
	svc := NewConverterService(zap.NewNop())
	inputs := []string{"10L", "2mi", "kg", "32g", "1/5lbs", "3/2/3kg"}

	var wg sync.WaitGroup
	errCh := make(chan error, len(inputs)*50)

	for i := 0; i < 50; i++ {
		for _, in := range inputs {
			wg.Add(1)
			go func(in string) {
				defer wg.Done()
				first, err1 := svc.Convert(context.Background(), in)
				second, err2 := svc.Convert(context.Background(), in)
				if first != second || (err1 == nil) != (err2 == nil) {
					errCh <- errors.New("non-deterministic result for " + in)
				}
			}(in)
		}
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Error(err)
	}
}
