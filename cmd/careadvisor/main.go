// Package main provides the care advisor service and its command line client.
//
// Usage:
//
//	careadvisor serve
//	careadvisor ask --symptoms "dry cough and fatigue" --emotion "a bit worried"
//	careadvisor topics
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errAdviceUnavailable) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
