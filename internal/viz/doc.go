// Package viz renders the roulette selector as a Bubble Tea program.
//
// The screen shows a start button, the item table and, once a run has
// settled, a result panel. While a run is in progress the cycling row is
// tinted from the theme's cool color toward its hot color as the wheel
// slows down.
//
// # Key Bindings
//
//	Enter/Space - Start a selection run
//	T           - Cycle color themes
//	?           - Toggle full help
//	Q/Esc       - Quit (abandons a run in progress)
package viz
