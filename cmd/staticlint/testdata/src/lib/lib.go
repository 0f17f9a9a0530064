package lib

import (
	"errors"
	"log"
	"os"
)

func Fail(code int) {
	os.Exit(code) // want "os.Exit terminates the process; return an error instead"
}

func Fatal(err error) {
	log.Fatalf("error: %v", err) // want "log.Fatalf terminates the process; return an error instead"
}

func Check() error {
	return errors.New("returned, not exited")
}
