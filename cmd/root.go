package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "polyvoice",
	Short: "Multi-voice music notation toolkit",
	Long:  `Validates, converts and exports multi-voice practice-journal scores.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
