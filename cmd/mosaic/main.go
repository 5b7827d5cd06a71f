package main

import "github.com/katalvlaran/mosaic/internal/cli"

func main() {
	cli.Execute()
}
