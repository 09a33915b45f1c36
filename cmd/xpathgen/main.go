package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	var cfg Config
	if err := cfg.Generate(os.Args[1:]...); err != nil {
		log.Fatal(err)
	}
}
