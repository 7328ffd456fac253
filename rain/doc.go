// Package rain simulates falling glyphs for a terminal "digital rain".
//
// An Engine owns the live cells and the grid they fall through. Each call to
// Frame draws every live cell at its current position, advances it, drops the
// cells that reached the bottom and appends a freshly spawned batch at row 0.
//
// The engine never clears what it drew: glyphs left behind by a moving cell
// stay on screen and form the trail.
//
// All randomness flows through an injected Rand, so a scripted source makes
// every frame reproducible.
package rain
