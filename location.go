package expect

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Location identifies where an expression was captured.
type Location struct {
	File string
	Line int
}

// CallerLocation returns the Location of the caller skip
// frames above the function calling CallerLocation.
func CallerLocation(skip int) Location {
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		return Location{File: file, Line: line}
	}
	return Location{File: "Unknown File"}
}

func (l Location) String() string {
	if l.Line == 0 {
		return l.File
	}
	return fmt.Sprintf("%s:%d", filepath.Base(l.File), l.Line)
}
