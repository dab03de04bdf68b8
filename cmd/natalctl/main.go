// Command natalctl computes natal charts and sign compatibility from the
// terminal, and prepares cache databases.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
