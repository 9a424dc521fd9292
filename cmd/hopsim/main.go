// Command hopsim simulates messages that hop over random links of a network
// until they reach their random destinations.
package main

import (
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	err := newRootCmd(os.Stdout).Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
