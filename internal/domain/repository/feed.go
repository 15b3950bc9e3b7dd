package repository

// ChangeFeed lets subscribers wake on writes instead of waiting for the next
// poll tick.
type ChangeFeed interface {
	// Watch returns a channel that is closed after the next write. Callers
	// re-arm by calling Watch again.
	Watch() <-chan struct{}
}
