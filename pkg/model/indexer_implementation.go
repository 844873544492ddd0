package model

type indexerImplementation struct {
	tracks   int
	sessions int
	papers   int
}

func (indexer *indexerImplementation) Position(timeSlot, track, slot int) int {
	return timeSlot*indexer.papers*indexer.tracks + track*indexer.papers + slot
}

func (indexer *indexerImplementation) Attributes(position int) (timeSlot, track, slot int) {
	slot = position % indexer.papers
	position = position / indexer.papers

	track = position % indexer.tracks
	position = position / indexer.tracks

	timeSlot = position

	return timeSlot, track, slot
}

func (indexer *indexerImplementation) Session(position int) int {
	return position / indexer.papers
}

func (indexer *indexerImplementation) TimeSlot(position int) int {
	return position / (indexer.papers * indexer.tracks)
}

func (indexer *indexerImplementation) SessionTimeSlot(session int) int {
	return session / indexer.tracks
}
