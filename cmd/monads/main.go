package main

import "github.com/ib-77/monads/internal/cli"

func main() {
	cli.Execute()
}
