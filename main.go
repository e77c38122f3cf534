package main

import (
	"fmt"
	"os"

	"github.com/yvinc/203-proj1/internal/cli"
	apperrors "github.com/yvinc/203-proj1/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render(apperrors.Format(err)))
		os.Exit(1)
	}
}
