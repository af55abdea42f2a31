package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lifeos/internal/cli"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive shell",
	Long:  `Opens the interactive life_os shell with agent chat, document evolution, and routine commands.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys, err := newSystem(cmd)
		if err != nil {
			fmt.Printf("Error initializing lifeos: %v\n", err)
			os.Exit(1)
		}
		defer sys.Close()

		if err := cli.NewREPL(sys).Run(context.Background()); err != nil {
			fmt.Printf("Shell error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
