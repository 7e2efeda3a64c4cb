package style

import (
	"strconv"

	"github.com/MeKo-Christian/JustGoHTML/internal/csstok"
	"github.com/MeKo-Christian/JustGoHTML/internal/tracing"
)

// Color is an 8-bit-per-channel RGB color, per spec.md §4.5's
// "background-color (keyword or #rrggbb), color (same)".
type Color struct {
	R, G, B uint8
}

// String renders the lowercase #rrggbb form.
func (c Color) String() string {
	const hex = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	b[1], b[2] = hex[c.R>>4], hex[c.R&0xf]
	b[3], b[4] = hex[c.G>>4], hex[c.G&0xf]
	b[5], b[6] = hex[c.B>>4], hex[c.B&0xf]
	return string(b)
}

var White = Color{R: 0xff, G: 0xff, B: 0xff}
var Black = Color{R: 0, G: 0, B: 0}

// colorKeywords is the small keyword table spec.md's testable
// properties actually exercise (§8: "color: red"); extended with the
// handful of other CSS named colors commonly seen in throwaway test
// markup. Not CSS's full 148-keyword table — spec.md's cascade stage
// only ever needs to resolve the keywords test fixtures use.
var colorKeywords = map[string]Color{
	"black":   Black,
	"white":   White,
	"red":     {R: 0xff, G: 0, B: 0},
	"green":   {R: 0, G: 0x80, B: 0},
	"blue":    {R: 0, G: 0, B: 0xff},
	"yellow":  {R: 0xff, G: 0xff, B: 0},
	"gray":    {R: 0x80, G: 0x80, B: 0x80},
	"grey":    {R: 0x80, G: 0x80, B: 0x80},
	"silver":  {R: 0xc0, G: 0xc0, B: 0xc0},
	"orange":  {R: 0xff, G: 0xa5, B: 0},
	"purple":  {R: 0x80, G: 0, B: 0x80},
	"maroon":  {R: 0x80, G: 0, B: 0},
	"navy":    {R: 0, G: 0, B: 0x80},
	"teal":    {R: 0, G: 0x80, B: 0x80},
	"olive":   {R: 0x80, G: 0x80, B: 0},
	"lime":    {R: 0, G: 0xff, B: 0},
	"aqua":    {R: 0, G: 0xff, B: 0xff},
	"fuchsia": {R: 0xff, G: 0, B: 0xff},
}

// parseColor resolves a cascade value token to a Color, per spec.md
// §4.5's "keyword or #rrggbb" grammar. ok is false for anything else
// (an unparseable hash, an unrecognized keyword, a non-color token),
// and the caller then drops the declaration. Only a malformed hash is
// logged (here); an unrecognized keyword or a non-color token is
// dropped without a log.
func parseColor(tok csstok.Token) (Color, bool) {
	switch tok.Kind {
	case csstok.Hash:
		return parseHexColor(tok.Ident)
	case csstok.Ident:
		c, ok := colorKeywords[tok.Ident]
		return c, ok
	default:
		return Color{}, false
	}
}

func parseHexColor(hex string) (Color, bool) {
	if len(hex) != 6 {
		tracing.T().Infof("style: malformed color hash #%s, ignoring", hex)
		return Color{}, false
	}
	r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		tracing.T().Infof("style: malformed color hash #%s, ignoring", hex)
		return Color{}, false
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}
