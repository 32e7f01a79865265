// Package main is the entry point for the notes CLI.
package main

import "github.com/sakif/notekeeper/internal/cli"

func main() {
	cli.Execute()
}
