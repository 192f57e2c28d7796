// Package main is the entry point for the svcdeps CLI.
package main

import "svcdeps.dev/pkg/svcdeps/cmd"

func main() {
	cmd.Execute()
}
