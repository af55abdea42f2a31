package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aretw0/lifeos/internal/config"
	"github.com/aretw0/lifeos/pkg/domain"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Evaluate tasks.yaml through the go/no-go checker",
	Long:  `Loads task definitions from tasks.yaml and scores each one against the weighted go/no-go criteria.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys, err := newSystem(cmd)
		if err != nil {
			fmt.Printf("Error initializing lifeos: %v\n", err)
			os.Exit(1)
		}
		defer sys.Close()

		dir, _ := cmd.Flags().GetString("dir")
		loaded := config.LoadTasks(dir, sys.Logger())
		if len(loaded) == 0 {
			fmt.Println("No tasks found in tasks.yaml")
			return
		}

		names := make([]string, 0, len(loaded))
		for name := range loaded {
			names = append(names, name)
		}
		sort.Strings(names)

		specs := make([]domain.TaskSpec, 0, len(names))
		for _, name := range names {
			specs = append(specs, loaded[name])
		}

		summary := sys.Checker().Summary(specs)
		for _, verdict := range summary.Decisions {
			decision := "no-go"
			if verdict.Go {
				decision = "go"
			}
			fmt.Printf("%-40s %-5s score=%.2f %s\n",
				verdict.Task, decision, verdict.Score, verdict.Reason)
		}
		fmt.Printf("\n%d tasks: %d go, %d no-go\n",
			summary.TotalTasks, summary.GoDecisions, summary.NoGoDecisions)
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}
