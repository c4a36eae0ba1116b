package domain

// NextID returns one more than the largest id in ids, so an empty collection
// starts at 1. Stores backed by a database sequence do not use it.
func NextID(ids []int64) int64 {
	var highest int64
	for _, id := range ids {
		highest = max(highest, id)
	}
	return highest + 1
}
