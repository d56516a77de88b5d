// main is the entry point for the samsarademo CLI.
package main

import (
	"github.com/jayarege/Samsarademo/cmd"
	"github.com/jayarege/Samsarademo/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
