package compiler

// File name conventions
const (
	// GoFileSuffix is the extension of the generated source file.
	GoFileSuffix = ".go"

	// TestFileSuffix replaces GoFileSuffix for the generated test file.
	TestFileSuffix = "_test.go"
)

// File permissions for generated output.
const (
	GeneratedFileMode = 0644
)
