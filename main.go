// Package main is the entry point for the testgen CLI.
package main

import "testgen.dev/pkg/testgen/cmd"

func main() {
	cmd.Execute()
}
