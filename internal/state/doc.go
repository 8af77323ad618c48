// Package state holds the load state shared between the loader goroutine and
// the UI.
//
// The loader calls Store.Update once per fetch attempt and the UI reads
// Store.Snapshot on its refresh tick. A Snapshot is a deep copy, so the UI
// may hold on to it while the loader keeps writing.
//
// The phase distinguishes three situations the UI must render differently:
//
//	PhaseLoading  no attempt has finished
//	PhaseFailed   attempts have finished, none succeeded
//	PhaseReady    a collection arrived (possibly with zero records)
//
// A ready store with no characters is not the same as a loading store, and
// the collection is fixed once it has loaded: the view layer owns per-record
// flags from then on.
//
// The zero Store is ready to use.
package state
