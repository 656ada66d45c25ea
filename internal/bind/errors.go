package bind

import (
	"fmt"
)

// ValidationError reports malformed input to a bind operation, such as a
// row-count mismatch in column-bind or an empty combine.
type ValidationError struct {
	Op  string
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Op + ": " + e.Msg
}

// TypeIncompatibilityError reports data that can neither be collected into
// nor promoted with the column accumulated so far.
// Index is 1-based. Column is empty for combine.
type TypeIncompatibilityError struct {
	Op     string
	Index  int
	Column string
	Have   string // type being collected
	Got    string // type of the offending data
}

func (e *TypeIncompatibilityError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: incompatible type at index %d : %s, was collecting : %s",
			e.Op, e.Index, e.Got, e.Have)
	}
	return fmt.Sprintf("%s: incompatible type (data index: %d, column: '%s', was collecting: %s, incompatible with data of type: %s)",
		e.Op, e.Index, e.Column, e.Have, e.Got)
}

// InternalBoundsError is raised with panic when a collect range falls
// outside the target buffer. Correct orchestration never triggers it.
type InternalBoundsError struct {
	Start, Len, Size int
}

func (e InternalBoundsError) Error() string {
	return fmt.Sprintf("bind: collect range [%d, %d) outside buffer of %d rows",
		e.Start, e.Start+e.Len, e.Size)
}
