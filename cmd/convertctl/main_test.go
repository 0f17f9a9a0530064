package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(withSeparator(args))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConvertSentences(t *testing.T) {
	out, errOut, err := execute(t, "10L", "kg", "2mi")
	require.NoError(t, err)

	assert.Equal(t, "10 litres converts to 2.64172 gallons\n"+
		"1 kilogram converts to 2.20462 pounds\n"+
		"2 miles converts to 3.21869 kilometres\n", out)
	assert.Empty(t, errOut)
}

func TestConvertJSON(t *testing.T) {
	out, _, err := execute(t, "--json", "1/5lbs")
	require.NoError(t, err)

	assert.JSONEq(t, `{"initNum":0.2,"initUnit":"lbs","returnNum":0.09072,"returnUnit":"kg","string":"0.2 pounds converts to 0.09072 kilograms"}`, out)
}

func TestConvertRejected(t *testing.T) {
	out, errOut, err := execute(t, "32g", "3/7.2/4kilomegagram", "gal")
	require.ErrorIs(t, err, errRejected)

	assert.Equal(t, "1 gallon converts to 3.78541 litres\n", out)
	assert.Equal(t, "32g: invalid unit\n3/7.2/4kilomegagram: invalid number and unit\n", errOut)
}

func TestConvertNegativeInput(t *testing.T) {
	out, errOut, err := execute(t, "-2km", "10L", "-1/2mi")
	require.NoError(t, err)

	assert.Equal(t, "-2 kilometres converts to -1.24274 miles\n"+
		"10 litres converts to 2.64172 gallons\n"+
		"-0.5 miles converts to -0.80467 kilometres\n", out)
	assert.Empty(t, errOut)
}

func TestConvertNegativeInputJSON(t *testing.T) {
	out, _, err := execute(t, "-.5kg", "--json")
	require.NoError(t, err)

	assert.JSONEq(t, `{"initNum":-0.5,"initUnit":"kg","returnNum":-1.10231,"returnUnit":"lbs","string":"-0.5 kilograms converts to -1.10231 pounds"}`, out)
}

func TestWithSeparator(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no negatives", []string{"--json", "10L"}, []string{"--json", "10L"}},
		{"negative first", []string{"-2km", "--json"}, []string{"--json", "--", "-2km"}},
		{"keeps input order", []string{"10L", "-v", "-1kg"}, []string{"-v", "--", "10L", "-1kg"}},
		{"explicit separator", []string{"--", "-2km"}, []string{"--", "-2km"}},
		{"subcommand", []string{"units"}, []string{"units"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withSeparator(tt.args))
		})
	}
}

func TestConvertRequiresArgs(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)
}

func TestUnitsCommand(t *testing.T) {
	out, _, err := execute(t, "units")
	require.NoError(t, err)

	assert.Contains(t, out, "CODE")
	for _, code := range []string{"mi", "km", "gal", "L", "lbs", "kg"} {
		assert.Contains(t, out, code)
	}
	assert.Contains(t, out, "litre")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "Build version: N/A")
}
