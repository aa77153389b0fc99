package main

import "github.com/orderman/orderman-api/cli"

func main() {
	cli.Execute()
}
