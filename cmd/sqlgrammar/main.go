package main

import (
	"os"

	"github.com/vippsas/sqlgrammar/cmd/sqlgrammar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
