package main

import (
	"os"

	"github.com/alpacahq/bizdate/cmd"
	"github.com/alpacahq/bizdate/utils/log"
)

func main() {
	err := cmd.Execute()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
