package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lendstock.GO/config"
	"lendstock.GO/engine"
	"lendstock.GO/service/seed"
)

func newEngine() (*engine.Engine, error) {
	config.InitRedis()
	st, err := config.NewStore()
	if err != nil {
		return nil, err
	}
	return engine.New(st), nil
}

var (
	exportFile string
	importFile string
	clearYes   bool
	seedItems  int
)

var exportCmd = &cobra.Command{
	Use:   "data:export",
	Short: "Export all collections to a single JSON document",
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := newEngine()
		if err != nil {
			fmt.Printf("Store init failed: %v\n", err)
			return
		}
		out := os.Stdout
		if exportFile != "" {
			f, err := os.Create(exportFile)
			if err != nil {
				fmt.Printf("Failed to create %s: %v\n", exportFile, err)
				return
			}
			defer f.Close()
			out = f
		}
		if err := eng.Backup.ExportJSON(out); err != nil {
			fmt.Printf("Export failed: %v\n", err)
			return
		}
		if exportFile != "" {
			fmt.Printf("Exported to %s\n", exportFile)
		}
	},
}

var importCmd = &cobra.Command{
	Use:   "data:import",
	Short: "Restore all collections from an exported JSON document",
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(importFile)
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", importFile, err)
			return
		}
		eng, err := newEngine()
		if err != nil {
			fmt.Printf("Store init failed: %v\n", err)
			return
		}
		if err := eng.Backup.Import(raw); err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}
		fmt.Println("Import successful. All collections replaced.")
	},
}

var clearCmd = &cobra.Command{
	Use:   "data:clear",
	Short: "Remove every application key from the store",
	Run: func(cmd *cobra.Command, args []string) {
		if !clearYes {
			fmt.Println("Refusing to clear without --yes")
			return
		}
		eng, err := newEngine()
		if err != nil {
			fmt.Printf("Store init failed: %v\n", err)
			return
		}
		if err := eng.Backup.Clear(); err != nil {
			fmt.Printf("Clear failed: %v\n", err)
			return
		}
		fmt.Println("All application data cleared.")
	},
}

var seedCmd = &cobra.Command{
	Use:   "data:seed",
	Short: "Generate a demo catalog (categories, suppliers, items)",
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := newEngine()
		if err != nil {
			fmt.Printf("Store init failed: %v\n", err)
			return
		}
		actor := eng.CurrentUser().Username
		err = seed.Generate(eng.Categories, eng.Suppliers, eng.Items, eng.Settings(),
			seed.Options{Items: seedItems}, actor)
		if err != nil {
			fmt.Printf("Seed failed: %v\n", err)
			return
		}
		fmt.Printf("Seeded %d items.\n", seedItems)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Output file (default stdout)")
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Exported JSON document (required)")
	importCmd.MarkFlagRequired("file")
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm the wipe")
	seedCmd.Flags().IntVar(&seedItems, "items", 20, "Number of items to generate")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(seedCmd)
}
