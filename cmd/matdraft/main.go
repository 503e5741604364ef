package main

import "github.com/kdfrederick/matdraft/internal/cli"

func main() {
	cli.Execute()
}
