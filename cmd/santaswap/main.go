package main

import (
	"github.com/jpmeyers/santaswap/internal/cli"
)

func main() {
	cli.Execute()
}
