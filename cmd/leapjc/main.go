// Command leapjc tokenizes source files and inspects name tables.
package main

import (
	"os"

	"github.com/leapstack-labs/leapjc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
