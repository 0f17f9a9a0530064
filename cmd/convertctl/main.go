// Package main содержит convertctl: конвертацию единиц из командной строки
// без запуска HTTP сервера.
package main

import (
	"os"
)

// Заполняются при сборке через ldflags
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cmd := newRootCmd()
	cmd.SetArgs(withSeparator(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
