// ABOUTME: Entry point for infercalc CLI
// ABOUTME: Terminal client for CPU vs GPU inference hardware comparisons

package main

import (
	"fmt"
	"os"

	"github.com/markalston/inference-calculator/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
