package demo

import (
	"context"

	"github.com/ezrec/minibios/swi"
)

const (
	BAND_COLOR       = uint16(24 | 10<<5 | 24<<10)
	BACKGROUND_COLOR = uint16(16 | 28<<5 | 16<<10)
	BAND_WIDTH       = 8 // Height of the centre band, in lines.
)

// Mode3Band fills the screen with the background colour, with a band across
// the centre, then idles. Both band edges are drawn, so the band covers
// BAND_WIDTH+1 lines.
func Mode3Band(ctx context.Context, m Machine) (err error) {
	err = setMode3(m)
	if err != nil {
		return
	}

	center := SCREEN_HEIGHT / 2
	first := center - BAND_WIDTH/2
	last := center + BAND_WIDTH/2

	for y := range SCREEN_HEIGHT {
		err = ctx.Err()
		if err != nil {
			return
		}

		color := BACKGROUND_COLOR
		if y >= first && y <= last {
			color = BAND_COLOR
		}

		err = fillLine(m, y, color)
		if err != nil {
			return
		}
	}

	err = m.Swi(swi.SWI_HALT)
	return
}
