package main

import (
	"github.com/otabekd/factoryops-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
