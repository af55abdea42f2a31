package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lifeos/internal/presentation/graph"
	"github.com/aretw0/lifeos/pkg/domain"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the protocol dependency graph",
	Long:  `Outputs a Mermaid diagram (graph TD) of the registered protocols and their path, circular, and scale dependencies.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys, err := newSystem(cmd)
		if err != nil {
			fmt.Printf("Error initializing lifeos: %v\n", err)
			os.Exit(1)
		}
		defer sys.Close()

		var protocols []*domain.Protocol
		for _, name := range sys.Protocols().List() {
			if p, err := sys.Protocols().Get(name); err == nil {
				protocols = append(protocols, p)
			}
		}

		fmt.Print(graph.GenerateMermaid(protocols, nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
