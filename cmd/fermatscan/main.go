package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fermatscan/fermatscan/internal/app"
	apperrors "github.com/fermatscan/fermatscan/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		// Flag parse errors were already reported through the flag set's
		// output; validation errors have not been written anywhere yet.
		var cfgErr apperrors.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "fermatscan: %v\n", err)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
