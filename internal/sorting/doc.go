// Package sorting provides the instrumented sort engine.
//
// The package defines the types that flow between an algorithm and whatever
// draws it:
//
//   - [Algorithm]: closed set of supported sorts (Bogo, Bubble, Insertion, Merge, Quick)
//   - [Count]: tally of significant operations for one run, tagged with a [CountKind]
//   - [Snapshot]: independent copy of the sequence plus metadata, produced per step
//   - [Renderer]: render/pacing contract implemented by frontends
//   - [Engine]: owns the sequence and drives one algorithm to completion
//
// # Example
//
//	eng := sorting.New(sorting.Merge, 50, sorting.WithTick(100*time.Millisecond))
//	count, err := eng.Run(frontend)
//	if errors.Is(err, sorting.ErrCancelled) {
//		// user pressed q
//	}
//
// # Thread Safety
//
// An Engine is NOT thread-safe and runs synchronously on the caller's
// goroutine. The only suspension point is [Renderer.Sleep]. Snapshots handed
// to a Renderer never alias the engine's sequence.
package sorting
