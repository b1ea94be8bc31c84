package sqldocument

import (
	"fmt"
)

// FileRef is a dedicated type for file references, allowing future refactoring
// of how files are identified without changing the API.
type FileRef string

// Pos represents a position in a source file with line and column numbers.
// Line and column are 1-indexed for human-readable error messages; Col
// counts characters, Offset is the 0-indexed byte offset into the text.
type Pos struct {
	File      FileRef
	Line, Col int
	Offset    int
}

func (p Pos) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// ScannerInput holds the text being scanned and the file it came from.
type ScannerInput struct {
	input string
	file  FileRef
}

func (si *ScannerInput) SetInput(input []byte) {
	si.input = string(input)
}

func (si *ScannerInput) SetFile(file FileRef) {
	si.file = file
}
