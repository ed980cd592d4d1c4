package testutil

import "github.com/hupe1980/kmeans/vector"

// SixPoints returns six 3-D points that form two loose groups.
func SixPoints() []vector.Point {
	return []vector.Point{
		{10, 41, 23},
		{22, 30, 29},
		{11, 42, 5},
		{20, 32, 4},
		{12, 40, 12},
		{21, 36, 23},
	}
}

// SixteenPoints returns a 2-D dataset of sixteen points in four visually
// separate groups, handy for comparing the quality of different k.
func SixteenPoints() []vector.Point {
	return []vector.Point{
		{10, 30},
		{12, 50},
		{14, 70},

		{9, 150},
		{20, 175},
		{8, 200},
		{14, 240},

		{50, 35},
		{40, 50},
		{45, 60},
		{55, 45},

		{60, 130},
		{60, 220},
		{70, 150},
		{60, 190},
		{90, 160},
	}
}
