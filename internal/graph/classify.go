package graph

// Level buckets a combined day count into one of five intensity levels.
// The break points are fixed and deliberately match the familiar
// contribution-heatmap convention; they are never rescaled to the data.
func Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count == 1:
		return 1
	case count <= 5:
		return 2
	case count < 25:
		// 6-10 and 11-24 both render as level3
		return 3
	default:
		return 4
	}
}
