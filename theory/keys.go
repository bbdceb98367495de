package theory

import (
	"fmt"

	"github.com/rmerrell/polyvoice/model"
)

type Alterations struct {
	Sharps []string `json:"sharps"`
	Flats  []string `json:"flats"`
}

// The circle-of-fifths orders. A key takes a prefix of exactly one of these.
var sharpOrder = [7]string{"F#", "C#", "G#", "D#", "A#", "E#", "B#"}
var flatOrder = [7]string{"Bb", "Eb", "Ab", "Db", "Gb", "Cb", "Fb"}

// Alteration count per key, negative for flats.
var keyAlterationCount = map[model.KeySignature]int{
	model.CMajor:      0,
	model.GMajor:      1,
	model.DMajor:      2,
	model.AMajor:      3,
	model.EMajor:      4,
	model.BMajor:      5,
	model.FSharpMajor: 6,
	model.CSharpMajor: 7,
	model.FMajor:      -1,
	model.BFlatMajor:  -2,
	model.EFlatMajor:  -3,
	model.AFlatMajor:  -4,
	model.DFlatMajor:  -5,
	model.GFlatMajor:  -6,
	model.CFlatMajor:  -7,

	model.AMinor:      0,
	model.EMinor:      1,
	model.BMinor:      2,
	model.FSharpMinor: 3,
	model.CSharpMinor: 4,
	model.GSharpMinor: 5,
	model.DSharpMinor: 6,
	model.ASharpMinor: 7,
	model.DMinor:      -1,
	model.GMinor:      -2,
	model.CMinor:      -3,
	model.FMinor:      -4,
	model.BFlatMinor:  -5,
	model.EFlatMinor:  -6,
	model.AFlatMinor:  -7,
}

// GetKeySignatureAlterations returns the ordered sharps or flats for a key.
// At most one of the two lists is non-empty.
func GetKeySignatureAlterations(key model.KeySignature) (Alterations, error) {
	count, ok := keyAlterationCount[key]
	if !ok {
		return Alterations{}, fmt.Errorf("unknown key signature %q", key)
	}
	res := Alterations{Sharps: []string{}, Flats: []string{}}
	if count > 0 {
		res.Sharps = append(res.Sharps, sharpOrder[:count]...)
	}
	if count < 0 {
		res.Flats = append(res.Flats, flatOrder[:-count]...)
	}
	return res, nil
}
