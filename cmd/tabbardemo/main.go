package main

import (
	"os"

	"github.com/xqrs/tabbar/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
