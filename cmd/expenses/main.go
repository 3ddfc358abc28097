package main

import "github.com/rustyeddy/expenses/internal/cli"

func main() {
	cli.Execute()
}
