package rotation

// srsTable holds the Super Rotation System's per-piece, per-rotation cell
// offsets, ported verbatim from the reference source's (x, y) tables.
var srsTable = table{
	// I
	{
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	// T
	{
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
	},
	// L
	{
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	// J
	{
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
	},
	// S
	{
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	// Z
	{
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
	},
	// O
	{
		{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
	},
}
