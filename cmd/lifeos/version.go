package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/lifeos"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lifeos",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lifeos version %s\n", strings.TrimSpace(lifeos.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
