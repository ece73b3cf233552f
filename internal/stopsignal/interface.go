package stopsignal

// Coordinator is a cooperative stop signal shared between the execution
// context running a transcription loop and whatever requests the stop
// (a signal handler, another process). The two sides may share nothing
// but a filesystem, so the signal is polled, never pushed.
type Coordinator interface {
	// RequestStop records a stop request. The transcription loop observes
	// it at the next chunk boundary; an in-flight chunk is never interrupted.
	RequestStop() error
	// IsStopRequested reports whether a stop has been requested.
	IsStopRequested() bool
	// Reset clears any pending stop request so a new run is not born
	// pre-cancelled.
	Reset() error
}
