package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/wsp/cmd/wsp"
	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/arthur-debert/wsp/pkg/ui/styles"
)

func main() {
	rootCmd := wsp.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		if errors.IsErrorCode(err, errors.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Usage()
		}

		os.Exit(1)
	}
}
