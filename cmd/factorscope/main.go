// Package main is the factorscope command-line entry point.
package main

import "github.com/factorscope/core/internal/cli"

func main() {
	cli.Execute()
}
