package rotation

// arsTable holds the classic Arika Rotation System's per-piece,
// per-rotation cell offsets. ARS shares SRS's shapes for every piece except
// I, which spawns flush against the top row rather than one row below it —
// see DESIGN.md's Open Question decision on this table.
var arsTable = table{
	// I
	{
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
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
