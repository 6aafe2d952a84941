package ir

import "fmt"

// Location points at the host source that produced an IR node. Synthetic
// nodes carry a nil *Location.
type Location struct {
	Source string
	Line   int
	Column int
}

func (l *Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Source, l.Line, l.Column)
}
