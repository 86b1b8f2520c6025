// Package viz renders the portfolio in a terminal.
//
// The backdrop is drawn into a [Canvas], a braille surface whose cells keep
// the color of the strongest mark drawn into them. The page is laid out by
// [PageView] in terminal rows and revealed as the viewport scrolls.
//
// # Key Bindings
//
//	↑/k ↓/j   - Scroll the page
//	1-5       - Jump to a section
//	E         - Explore projects
//	D         - Download the resume
//	Space     - Pause the backdrop
//	R         - Reseed the particles
//	T         - Cycle color themes
//	G         - Toggle GIF recording
//	?         - Show help overlay
//
// # Recording
//
// Frames rendered while recording are saved as folio.gif in the current
// directory when recording stops.
package viz
