package main

import "github.com/enetx/dfa/internal/cli"

func main() {
	cli.Execute()
}
