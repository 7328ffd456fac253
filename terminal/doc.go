// Package terminal writes rain frames straight to an ANSI terminal.
//
// Features:
//   - Cursor addressing, foreground color and glyph output through a buffered Writer
//   - Basic 16-color SGR for palette entries, 38;5 / 38;2 for extended and RGB colors
//   - Terminal size query via ioctl, with a /dev/tty fallback when stdout is redirected
//   - Best-effort reset for panic recovery
//
// No terminfo lookup, no raw mode: the rain only writes, stdin carries the corpus.
package terminal
