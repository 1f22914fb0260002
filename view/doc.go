// Package view renders a solved pipe maze, either as plain text or on a
// tcell screen.
//
// Every cell falls in one of four classes:
//
//	start     the 'S' cell
//	loop      any other cell on the loop, drawn with its pipe glyph
//	enclosed  an off-loop cell inside the loop, drawn as 'I'
//	exterior  everything else, drawn as 'O'
//
// Text writes the picture to an io.Writer. Draw paints it on a tcell.Screen
// with a one-line status bar, and Run adds arrow-key panning until the user
// presses q, Esc or Ctrl-C.
package view
