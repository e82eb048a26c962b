// Command storefront is the HungerGenie ordering flow in a terminal: browse
// the menu, fill a cart, check out with a simulated payment, then watch the
// delivery tracking countdown. Everything persists in a local SQLite file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
