package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lifeos/internal/presentation/tui"
)

var docsCmd = &cobra.Command{
	Use:   "docs [name]",
	Short: "List living documents or show one",
	Long:  `Without arguments, lists every living document with its version. With a name, renders the document to the terminal.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sys, err := newSystem(cmd)
		if err != nil {
			fmt.Printf("Error initializing lifeos: %v\n", err)
			os.Exit(1)
		}
		defer sys.Close()

		ctx := context.Background()

		if len(args) == 1 {
			doc, err := sys.Documents().Get(ctx, args[0])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			render := tui.NewRenderer()
			out, err := render(fmt.Sprintf("# %s (v%d)\n\n%s", doc.Name, doc.Version, doc.Content))
			if err != nil {
				out = doc.Content
			}
			fmt.Print(out)
			return
		}

		names, err := sys.Documents().List(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		for _, name := range names {
			if doc, err := sys.Documents().Get(ctx, name); err == nil {
				fmt.Printf("%s (v%d, %s)\n", doc.Name, doc.Version, doc.Type)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
