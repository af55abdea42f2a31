package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lifeos"
	"github.com/aretw0/lifeos/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "Life OS is a personal life management system",
	Long: `Life OS treats your life as an antifragile organization: living
documents evolve with every insight, agents reason over your corpus,
protocols encode repeatable workflows, and wings monitor each life
domain.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("dir", ".", "Directory holding lifeos.yaml and the document store")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// newSystem initializes a System from the command's persistent flags.
func newSystem(cmd *cobra.Command) (*lifeos.System, error) {
	dir, _ := cmd.Flags().GetString("dir")
	debug, _ := cmd.Flags().GetBool("debug")

	var opts []lifeos.Option
	if debug {
		opts = append(opts, lifeos.WithLogger(logging.New(slog.LevelDebug)))
	}
	return lifeos.New(dir, opts...)
}
