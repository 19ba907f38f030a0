// Package viz is the interactive terminal frontend, built on Bubble Tea:
//
//   - [Frontend]: a sorting.Renderer that plays a run in the alternate screen
//   - [RenderChart]: the lipgloss bar chart used by the frontend
//   - [RunMenu]: algorithm picker and parameter editor
//   - Chrome themes selectable by name or cycled with T during a run
//
// # Key Bindings
//
//	Q/Esc  - Stop the run (the engine returns sorting.ErrCancelled)
//	T      - Cycle themes
//
// In the menu: j/k to move, enter to select, h/l to adjust a value, e to
// type one, s to start and esc to go back.
package viz
