package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmerrell/polyvoice/model"
	"github.com/rmerrell/polyvoice/util"
	"github.com/rmerrell/polyvoice/validate"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <score.json>",
	Short: "Validates a score file",
	Long:  `Runs timing and structural validation over a score JSON file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		runValidate(args[0])
	},
}

func runValidate(path string) {
	score := util.ReadJSONOrPanic[model.Score](path)
	res := validate.ValidateScore(&score)
	printResult(res)
	if !res.Valid {
		os.Exit(1)
	}
}

func printResult(res model.ValidationResult) {
	for _, w := range res.Warnings {
		fmt.Printf("warning: %v\n", w)
	}
	for _, e := range res.Errors {
		fmt.Printf("error: %v\n", e)
	}
	if res.Valid {
		fmt.Println("score is valid")
	}
}
