package main

import (
	"github.com/tacogips/xenon/internal/cli"
)

func main() {
	cli.Execute()
}
