// Command golox is the entry point for the tree-walking interpreter.
// It delegates argument parsing and pipeline dispatch entirely to the
// cli package; this file exists only to wire real os.Args and the
// real standard streams, and to translate the resulting exit code.
package main

import (
	"os"

	"github.com/akashmaji946/golox/cli"
)

func main() {
	streams := cli.Streams{Out: os.Stdout, Err: os.Stderr, Debug: os.Stdout}
	os.Exit(cli.Run(streams, os.Args[1:]))
}
