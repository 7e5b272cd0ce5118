package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags "-X main.version=...";
// it stays "dev" for unreleased builds.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the biosched version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}
