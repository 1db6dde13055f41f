package chat

// NormalizePair orders an unordered participant pair so the smaller user
// id always maps to the first column. Initiating a chat with the
// arguments swapped therefore resolves to the same row.
func NormalizePair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}
