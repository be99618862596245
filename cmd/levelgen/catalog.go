package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/levelgen/internal/pipeline"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [category]",
	Short: "List enemy categories and costs",
	Long: `Shows the enemy catalog the generator draws from: every category with
its entries and point costs. Pass a category name to list only that one.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCatalog,
}

func runCatalog(_ *cobra.Command, args []string) {
	cfg, logger := loadConfig()

	pipe, err := pipeline.New(cfg, nil, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cat := pipe.Catalog()

	categories := cat.Categories()
	if len(args) == 1 {
		if _, ok := cat.Pool(args[0]); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'levelgen catalog' to see available categories.")
			os.Exit(1)
		}
		categories = []string{args[0]}
	}

	if len(categories) == 0 {
		fmt.Println("Catalog is empty.")
		return
	}

	for _, name := range categories {
		entries, _ := cat.Pool(name)

		// Calculate column widths
		maxNameLen := 4 // "Name" header
		for _, e := range entries {
			if len(e.Name) > maxNameLen {
				maxNameLen = len(e.Name)
			}
		}

		fmt.Printf("%s (%d)\n", name, len(entries))
		fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Cost")
		fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "----")
		for _, e := range entries {
			fmt.Printf("  %-*s  %d\n", maxNameLen, e.Name, e.Cost)
		}
		fmt.Println()
	}

	fmt.Printf("Roster: %s + one each from %v, fallback %s\n",
		cfg.Roster.BroadPool, cfg.Roster.MandatoryPools, cfg.Filler)
}
