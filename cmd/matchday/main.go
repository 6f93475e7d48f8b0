package main

import "github.com/oldthorntonians/matchday/internal/cli"

func main() {
	cli.Execute()
}
