package model

// indexer gives a unique linear position to a combination of grid attributes and vice versa.
// Positions are laid out time slot first, then track, then slot within the session, so that
// every session occupies a contiguous block of positions and so does every time slot.
type indexer interface {
	// Returns the linear position of the k-th slot of the session held by track at timeSlot
	Position(timeSlot, track, slot int) int
	// Returns the grid attributes of a linear position
	Attributes(position int) (timeSlot, track, slot int)
	// Returns the session (timeSlot*tracks + track) a position belongs to
	Session(position int) int
	// Returns the time slot a position belongs to
	TimeSlot(position int) int
	// Returns the time slot a session belongs to
	SessionTimeSlot(session int) int
}

func newIndexer(config GridConfig) indexer {
	return &indexerImplementation{
		tracks:   config.ParallelTracks,
		sessions: config.SessionsPerTrack,
		papers:   config.PapersPerSession,
	}
}
