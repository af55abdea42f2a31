package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/lifeos/pkg/domain"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the registered agents",
	Run: func(cmd *cobra.Command, args []string) {
		sys, err := newSystem(cmd)
		if err != nil {
			fmt.Printf("Error initializing lifeos: %v\n", err)
			os.Exit(1)
		}
		defer sys.Close()

		factory := sys.Agents().Factory()
		for _, name := range factory.Names() {
			agent, err := factory.Get(name)
			if err != nil {
				continue
			}
			status := agent.Status()
			fmt.Printf("%s (%s) tasks=%d connected=%t\n",
				status.Name, status.Role, status.TasksCompleted, status.Connected)
		}
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <agent> <query>",
	Short: "Ask an agent a single question",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		sys, err := newSystem(cmd)
		if err != nil {
			fmt.Printf("Error initializing lifeos: %v\n", err)
			os.Exit(1)
		}
		defer sys.Close()

		agent, err := sys.Agents().Factory().Get(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		resp := agent.Process(context.Background(), strings.Join(args[1:], " "), domain.ExecContext{})
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			fmt.Printf("Encoding failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(askCmd)
}
