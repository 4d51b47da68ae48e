// pydis disassembles compiled script bytecode for runtime releases 1.0
// through 3.6.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
