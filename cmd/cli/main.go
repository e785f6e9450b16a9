package main

import (
	"github.com/mchmarny/shoreline/pkg/cli"
)

func main() {
	cli.Execute()
}
