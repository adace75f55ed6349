package main

import (
	"github.com/mvaldes/colonia-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
