// sensusctl scores questionnaires and inspects the instrument catalog from
// the command line, without a running server.
//
// Usage:
//
//	sensusctl score --instrument=gad7 --answers=1,2,0,3,1,0,2 [--output=json]
//	sensusctl instrument list
//	sensusctl instrument show gad7
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
