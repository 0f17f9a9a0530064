package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/InQaaaaGit/metric_converter/internal/service"
	"github.com/InQaaaaGit/metric_converter/internal/validator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errRejected возвращается, если хотя бы один ввод не прошёл проверку
var errRejected = errors.New("some inputs were rejected")

// negativeRe узнаёт отрицательные значения ("-2km", "-.5L", "-1/2mi"),
// которые pflag иначе разбирает как короткие флаги.
var negativeRe = regexp.MustCompile(`^-[\d./]`)

// withSeparator ставит "--" перед вводом, если среди аргументов есть
// отрицательное значение. Флаги переносятся в начало, порядок ввода
// сохраняется. Аргументы, где "--" уже есть, не меняются.
func withSeparator(args []string) []string {
	var flags, inputs []string
	negative := false

	for _, arg := range args {
		switch {
		case arg == "--":
			return args
		case negativeRe.MatchString(arg):
			negative = true
			inputs = append(inputs, arg)
		case strings.HasPrefix(arg, "-"):
			flags = append(flags, arg)
		default:
			inputs = append(inputs, arg)
		}
	}

	if !negative {
		return args
	}
	return append(append(flags, "--"), inputs...)
}

func newRootCmd() *cobra.Command {
	var asJSON, verbose bool

	cmd := &cobra.Command{
		Use:   "convertctl <input>...",
		Short: "Convert imperial and metric measurements",
		Long: `convertctl converts measurements such as "10L", "1/5lbs" or "mi" into
their paired unit: mi<->km, gal<->L, lbs<->kg.

Each argument is converted independently. Rejected inputs are reported on
stderr and make the command exit with status 1.

Negative values such as "-2km" are accepted as inputs, not flags. Use "--"
to pass inputs explicitly: convertctl --json -- -2km 10L`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
			}
			return runConvert(cmd, service.NewConverterService(logger), args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newUnitsCmd(), newVersionCmd())
	return cmd
}

func runConvert(cmd *cobra.Command, svc service.ConversionService, inputs []string, asJSON bool) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	enc := json.NewEncoder(out)
	rejected := false

	for _, input := range inputs {
		result, err := svc.Convert(context.Background(), input)
		if err != nil {
			var vErr *validator.Error
			if !errors.As(err, &vErr) {
				return fmt.Errorf("convert %q: %w", input, err)
			}
			rejected = true
			fmt.Fprintf(errOut, "%s: %s\n", input, vErr.Error())
			continue
		}

		if asJSON {
			if err := enc.Encode(result); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, result.String)
	}

	if rejected {
		return errRejected
	}
	return nil
}
