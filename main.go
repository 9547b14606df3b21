package main

import (
	"aurora-gff/cli"
)

func main() {
	cli.Start()
}
