// Package main is the entry point for the snaphu-watch release checker.
package main

import (
	"log"
	"os"

	"github.com/snaphu-watch/snaphu-watch/internal/cli"
)

func main() {
	log.SetPrefix("[snaphu-watch] ")
	log.SetFlags(0)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
