package main

import (
	"os"

	"github.com/unkn0wn-root/dhwire/cmd/dhwire/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
