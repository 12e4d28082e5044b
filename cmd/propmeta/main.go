package main

import "propmeta/internal/cli"

func main() {
	cli.Execute()
}
