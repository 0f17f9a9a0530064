package main

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

func TestOsExitAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), OsExitAnalyzer, "lib", "cli")
}

func TestStaticAnalyzersSkipsDisabled(t *testing.T) {
	for _, a := range staticAnalyzers(staticcheck.Analyzers, simple.Analyzers, stylecheck.Analyzers) {
		if disabledChecks[a.Name] {
			t.Errorf("disabled check %s must not be enabled", a.Name)
		}
		if !hasKnownPrefix(a.Name) {
			t.Errorf("unexpected analyzer %s", a.Name)
		}
	}
}
