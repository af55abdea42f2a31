package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Run the full daily routine once",
	Long:  `Runs intel briefing, strategic planning, execution planning, and document evolution, then prints the result.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys, err := newSystem(cmd)
		if err != nil {
			fmt.Printf("Error initializing lifeos: %v\n", err)
			os.Exit(1)
		}
		defer sys.Close()

		result := sys.DailyRoutine(context.Background())

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				fmt.Printf("Encoding failed: %v\n", err)
				os.Exit(1)
			}
			return
		}

		fmt.Printf("Daily routine for %s\n", result.Date)
		if result.Briefing != nil {
			fmt.Printf("  Opportunities: %d\n", len(result.Briefing.Opportunities))
			fmt.Printf("  Fragility warnings: %d\n", len(result.Briefing.Fragilities))
		}
		if result.Strategy != nil {
			fmt.Printf("  Strategic priorities: %d\n", len(result.Strategy.Priorities))
		}
		if result.Execution != nil {
			fmt.Printf("  Tasks planned: %d\n", result.Execution.TotalTasks)
		}
		fmt.Printf("  Document evolutions: %d\n", len(result.Evolutions))
	},
}

func init() {
	rootCmd.AddCommand(dailyCmd)
	dailyCmd.Flags().Bool("json", false, "Print the full routine result as JSON")
}
