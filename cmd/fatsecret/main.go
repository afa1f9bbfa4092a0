package main

import (
	"github.com/onsa/fatsecret-crawler/pkg/cli"
)

func main() {
	cli.Execute()
}
