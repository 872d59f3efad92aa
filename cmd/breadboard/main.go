// Package main provides the breadboard CLI.
// Implements: prd004-breadboard-cli R1.
package main

import "github.com/mesh-intelligence/circuits/internal/cli"

func main() {
	cli.Execute()
}
