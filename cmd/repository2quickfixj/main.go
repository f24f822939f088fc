// Command repository2quickfixj generates QuickFIX/J message classes directly
// from a FIX Orchestra repository file, without going through a QuickFIX data
// dictionary.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
