// Package viz provides the live terminal visualization for the central
// limit demo, built on the Bubble Tea framework.
//
//   - [Model]: the tick loop; regenerates the frame every tick and
//     redraws it, quitting on q/ctrl+c
//   - [Renderer]: pluggable chart adapter consumed by the loop
//   - [BarRenderer]: bar chart of bucket counts
//   - [LineRenderer]: bar chart plus a line overlay of the observed
//     counts against the normal reference curve
//
// # Key Bindings
//
//	Space - Pause/Resume regeneration
//	R     - Regenerate immediately
//	Q     - Quit
//	?     - Toggle full help
package viz
