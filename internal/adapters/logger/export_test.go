package logger

// Exported for white-box tests of error chain rendering.
var (
	Causes      = causes
	FormatChain = formatChain
)
