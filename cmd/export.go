package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmerrell/polyvoice/midi"
	"github.com/rmerrell/polyvoice/model"
	"github.com/rmerrell/polyvoice/util"
)

var exportTempo int

func init() {
	exportCmd.Flags().IntVar(&exportTempo, "tempo", 120, "default tempo until the first override")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <score.json> <out.mid>",
	Short: "Exports a score to a MIDI file",
	Long:  `Exports a score to a standard MIDI file, one track per part.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		score := util.ReadJSONOrPanic[model.Score](args[0])
		if err := midi.WriteScoreFile(&score, args[1], exportTempo); err != nil {
			panic("Could not export score: " + err.Error())
		}
		fmt.Printf("wrote %v\n", args[1])
	},
}
