package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the routine scheduler in the foreground",
	Long:  `Starts the cron scheduler that fires the daily routine and wing checks on their configured schedules, and blocks until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys, err := newSystem(cmd)
		if err != nil {
			fmt.Printf("Error initializing lifeos: %v\n", err)
			os.Exit(1)
		}
		defer sys.Close()

		sched := sys.Scheduler()
		if err := sched.Start(); err != nil {
			fmt.Printf("Scheduler error: %v\n", err)
			os.Exit(1)
		}

		cfg := sys.Config()
		fmt.Printf("Scheduler running (daily %q, wings %q). Ctrl+C to stop.\n",
			cfg.Schedule.Daily, cfg.Schedule.Wings)

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		<-shutdown

		sched.Stop()
		fmt.Println("\nScheduler stopped")
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}
