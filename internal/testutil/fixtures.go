package testutil

// Line fixtures. Each constant documents its line count.
const (
	// ThreeLines has three newline-terminated lines.
	ThreeLines = "the first allocation holds the header,\n" +
		"the second one copies the name,\n" +
		"and every line after that gets its own block.\n"

	// FiveLines has five newline-terminated lines.
	FiveLines = "alpha\n" +
		"bravo charlie\n" +
		"delta echo foxtrot\n" +
		"golf\n" +
		"hotel india juliet kilo\n"

	// NoTrailingNewline has four lines; the last has no newline.
	NoTrailingNewline = "one\n" +
		"two two\n" +
		"three three three\n" +
		"four without an ending"

	// BlankLines has seven lines, four of them empty.
	BlankLines = "header\n" +
		"\n" +
		"\n" +
		"middle\n" +
		"\n" +
		"\n" +
		"footer\n"
)
