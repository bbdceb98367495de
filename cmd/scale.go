package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmerrell/polyvoice/model"
	"github.com/rmerrell/polyvoice/theory"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> <type>",
	Short: "Prints the notes of a scale",
	Long:  `Prints the notes of a scale, e.g. "scale C major" or "scale F#3 blues".`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		notes, err := theory.GetScaleNotes(args[0], model.ScaleType(args[1]))
		if err != nil {
			panic(err.Error())
		}
		fmt.Println(strings.Join(notes, " "))
	},
}
