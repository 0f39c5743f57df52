package main

import (
	"os"

	"github.com/ogurasousui/codex-crm-clean-arch/cmd/crm/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
