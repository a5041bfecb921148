// Package main is the entry point for the pokedex debug CLI
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

func main() {
	if err := newRootCmd(buildApp).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.IsRetryable(err) {
			fmt.Fprintln(os.Stderr, "The remote source may be temporarily unavailable; try again.")
		}
		os.Exit(1)
	}
}
