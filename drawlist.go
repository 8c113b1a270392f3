package nodegraph

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandLine         CommandType = iota // straight line P0-P1
	CommandRect                            // rectangle outline P0-P1
	CommandRectFilled                      // filled rectangle P0-P1
	CommandCircle                          // circle outline around P0
	CommandCircleFilled                    // filled circle around P0
	CommandBezier                          // cubic curve P0..P3
	CommandText                            // text at P0
)

// DrawCommand is a single draw instruction. Coordinates are in screen space.
type DrawCommand struct {
	Type      CommandType
	P0        Vec2
	P1        Vec2
	P2        Vec2
	P3        Vec2
	Color     Color
	Thickness float64
	Radius    float64 // circle radius or rectangle corner rounding
	Text      string
	Scale     float64 // text scale
}

// DrawList records draw commands for one frame. Backends replay Commands in
// order. Commands can be split into channels so content emitted later is
// drawn beneath content emitted earlier.
type DrawList struct {
	Commands []DrawCommand

	channels [][]DrawCommand
	current  int
	split    bool
}

// Reset empties the list for a new frame.
func (dl *DrawList) Reset() {
	dl.Commands = dl.Commands[:0]
	dl.channels = dl.channels[:0]
	dl.current = 0
	dl.split = false
}

func (dl *DrawList) add(cmd DrawCommand) {
	if dl.split {
		dl.channels[dl.current] = append(dl.channels[dl.current], cmd)
		return
	}
	dl.Commands = append(dl.Commands, cmd)
}

// ChannelsSplit starts recording into n separate channels. Channel 0 is
// drawn first when merged.
func (dl *DrawList) ChannelsSplit(n int) {
	if dl.split {
		panic("nodegraph: ChannelsSplit while already split")
	}
	for len(dl.channels) < n {
		dl.channels = append(dl.channels, nil)
	}
	dl.channels = dl.channels[:n]
	for i := range dl.channels {
		dl.channels[i] = dl.channels[i][:0]
	}
	dl.current = 0
	dl.split = true
}

// SetChannel selects the channel subsequent commands go to.
func (dl *DrawList) SetChannel(i int) {
	if !dl.split || i < 0 || i >= len(dl.channels) {
		panic("nodegraph: SetChannel out of range")
	}
	dl.current = i
}

// Channel returns the channel commands currently go to, or -1 when the list
// is not split.
func (dl *DrawList) Channel() int {
	if !dl.split {
		return -1
	}
	return dl.current
}

// ChannelsMerge appends every channel, in index order, to Commands.
func (dl *DrawList) ChannelsMerge() {
	if !dl.split {
		panic("nodegraph: ChannelsMerge without ChannelsSplit")
	}
	for _, ch := range dl.channels {
		dl.Commands = append(dl.Commands, ch...)
	}
	dl.split = false
	dl.current = 0
}

// AddLine draws a straight line.
func (dl *DrawList) AddLine(a, b Vec2, c Color, thickness float64) {
	dl.add(DrawCommand{Type: CommandLine, P0: a, P1: b, Color: c, Thickness: thickness})
}

// AddRect draws a rectangle outline between min and max.
func (dl *DrawList) AddRect(min, max Vec2, c Color, rounding, thickness float64) {
	dl.add(DrawCommand{Type: CommandRect, P0: min, P1: max, Color: c, Radius: rounding, Thickness: thickness})
}

// AddRectFilled draws a filled rectangle between min and max.
func (dl *DrawList) AddRectFilled(min, max Vec2, c Color, rounding float64) {
	dl.add(DrawCommand{Type: CommandRectFilled, P0: min, P1: max, Color: c, Radius: rounding})
}

// AddCircle draws a circle outline.
func (dl *DrawList) AddCircle(center Vec2, radius float64, c Color, thickness float64) {
	dl.add(DrawCommand{Type: CommandCircle, P0: center, Radius: radius, Color: c, Thickness: thickness})
}

// AddCircleFilled draws a filled circle.
func (dl *DrawList) AddCircleFilled(center Vec2, radius float64, c Color) {
	dl.add(DrawCommand{Type: CommandCircleFilled, P0: center, Radius: radius, Color: c})
}

// AddBezier draws a cubic Bézier curve.
func (dl *DrawList) AddBezier(curve CubicBezier, c Color, thickness float64) {
	dl.add(DrawCommand{
		Type: CommandBezier,
		P0:   curve.P0, P1: curve.P1, P2: curve.P2, P3: curve.P3,
		Color: c, Thickness: thickness,
	})
}

// AddText draws text with its top-left corner at pos.
func (dl *DrawList) AddText(pos Vec2, c Color, scale float64, s string) {
	dl.add(DrawCommand{Type: CommandText, P0: pos, Color: c, Scale: scale, Text: s})
}

// Curve returns the Bézier stored in a CommandBezier command.
func (cmd *DrawCommand) Curve() CubicBezier {
	return CubicBezier{P0: cmd.P0, P1: cmd.P1, P2: cmd.P2, P3: cmd.P3}
}
