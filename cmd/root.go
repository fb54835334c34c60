package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lendstock",
	Short: "Equipment inventory and lending tracker",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if os.Getenv("NO_BANNER") == "" {
			figure.NewFigure("lendstock", "small", true).Print()
		}
	},
}

func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
