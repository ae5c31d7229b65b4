package world

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombies/scene"
)

var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

// Render clears the canvas, draws every sprite under t and writes the status line
// It reads simulation and registry state only
func (w *World) Render(c scene.Canvas, t scene.Transform) {
	c.Clear()
	w.scene.Draw(c, t)

	width, _ := c.Size()
	hud := fmt.Sprintf(" bullets %d  enemies %d  kills %d ", len(w.bullets), len(w.babies), w.kills)
	for i, r := range hud {
		if i >= width {
			break
		}
		c.SetContent(i, 0, r, nil, hudStyle)
	}
}
