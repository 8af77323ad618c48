package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the width above which the name column grows.
	LayoutWideWidth = 140
)

// Table geometry. Everything except the name column is fixed width.
const (
	colMarker   = 2
	colCheck    = 4
	colLocation = 10
	colHealth   = 10
	colPower    = 8
	colGap      = 2
	minNameCol  = 12

	// chromeRows is header + command bar + box borders + column header.
	chromeRows = 5
)

// Timing constants.
const (
	// SearchDebounce is how long typing must pause before the view re-derives.
	SearchDebounce = 120 * time.Millisecond

	// FlashDuration is how long confirmation messages stay visible.
	FlashDuration = 3 * time.Second

	// DefaultUIInterval is how often the UI polls the store while loading.
	DefaultUIInterval = 250 * time.Millisecond
)
