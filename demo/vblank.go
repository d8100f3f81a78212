package demo

import (
	"context"

	"github.com/ezrec/minibios/swi"
)

// FRAME_COLORS alternate from one frame to the next.
var FRAME_COLORS = [2]uint16{RGB5(31, 0, 0), RGB5(0, 0, 31)}

// waitLine polls VCOUNT until 'done' holds for the current line.
func waitLine(ctx context.Context, m Machine, done func(line uint16) bool) (err error) {
	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		var line uint16
		line, err = m.Read16(REG_VCOUNT)
		if err != nil {
			return
		}

		if done(line) {
			return
		}
	}
}

// VBlankFill draws 'frames' frames. Each frame waits for the start of the
// vertical blank, fills the screen with the frame colour, and reports the
// frame number through the Debug service.
func VBlankFill(ctx context.Context, m Machine, frames int) (err error) {
	err = setMode3(m)
	if err != nil {
		return
	}

	for frame := range frames {
		err = waitLine(ctx, m, func(line uint16) bool { return line < SCREEN_HEIGHT })
		if err != nil {
			return
		}
		err = waitLine(ctx, m, func(line uint16) bool { return line >= SCREEN_HEIGHT })
		if err != nil {
			return
		}

		color := FRAME_COLORS[frame%len(FRAME_COLORS)]
		for y := range SCREEN_HEIGHT {
			err = fillLine(m, y, color)
			if err != nil {
				return
			}
		}

		err = m.Swi(swi.SWI_DEBUG, uint32(frame))
		if err != nil {
			return
		}
	}

	return
}
