// Package tui holds the non-interactive implementations of sorting.Renderer:
//
//   - [LiveRenderer] repaints an ANSI bar chart on any io.Writer and relies on
//     a context for cancellation, so it works without raw mode or a TTY.
//   - [Headless] draws nothing and never waits; it can cancel after a fixed
//     number of sleeps.
//   - [Recorder] keeps every snapshot and sleep, optionally forwarding to
//     another renderer.
package tui
