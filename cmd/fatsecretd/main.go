package main

import (
	"log"

	"github.com/onsa/fatsecret-crawler/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
