// Package ui is roster's Bubble Tea front end.
//
// The Model polls the shared state.Store until the load finishes, then builds
// a viewstate.Engine from the collection and stops polling. All filtering,
// sorting and selection go through the engine; the UI only owns presentation
// state: the cursor, the scroll offset, the search box, overlays and the
// flash message.
//
// # Files
//
//   - app.go: Model, Update/View dispatch and Run
//   - table.go: the virtualized table, empty states and the titled box
//   - header.go: status bar and command bar
//   - search.go: debounced live search
//   - filter_modal.go: multi-select health filter
//   - help.go, keys.go: key bindings and the help overlay
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Rendering
//
// Only rows inside View.Window(offset, pageSize) are formatted, so the cost of
// a frame does not depend on the collection size. The cursor is an index into
// the current view; after any parameter change it is clamped and the window
// scrolls to keep it visible.
//
// Before the engine exists the table area shows a spinner while loading, or
// the classified error and a retry notice after a failed attempt. Once
// loaded, an empty collection and an empty filter result render different
// messages.
package ui
