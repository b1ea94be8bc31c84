package main

import (
	"os"

	"github.com/vippsas/sqltext/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
