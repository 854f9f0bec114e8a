package config

import (
	"fmt"
	"io"
	"os"
)

var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exit(1)
}

// ExitOnError calls Exitf with err when it is non-nil.
func ExitOnError(err error) {
	if err != nil {
		Exitf("Error: %v", err)
	}
}
