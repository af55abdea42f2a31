package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and protocol graph for consistency",
	Long:  `Loads the configuration and agent definitions, then verifies every protocol dependency references a registered protocol.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Configuration and protocol graph are valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	sys, err := newSystem(cmd)
	if err != nil {
		return err
	}
	defer sys.Close()

	engine := sys.Protocols()
	registered := make(map[string]bool)
	for _, name := range engine.List() {
		registered[name] = true
	}

	for _, name := range engine.List() {
		p, err := engine.Get(name)
		if err != nil {
			return err
		}
		for _, dep := range p.Dependencies {
			if !registered[dep.Protocol] {
				return fmt.Errorf("protocol %q depends on unregistered protocol %q", name, dep.Protocol)
			}
		}
	}
	return nil
}
