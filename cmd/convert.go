package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rmerrell/polyvoice/convert"
	"github.com/rmerrell/polyvoice/model"
	"github.com/rmerrell/polyvoice/util"
)

var toSheet bool

func init() {
	convertCmd.Flags().BoolVar(&toSheet, "to-sheet", false, "flatten a score into legacy sheet music")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <in.json> <out.json>",
	Short: "Converts between sheet music and scores",
	Long: `Converts legacy flat sheet music into a multi-voice score, or with
--to-sheet, flattens a score back down.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		runConvert(args[0], args[1])
	},
}

func runConvert(in string, out string) {
	if toSheet {
		score := util.ReadJSONOrPanic[model.Score](in)
		util.CreateJSON(out, convert.ScoreToSheetMusic(&score))
		return
	}
	flat := util.ReadJSONOrPanic[model.SheetMusic](in)
	util.CreateJSON(out, convert.SheetMusicToScore(&flat))
}
