package hgvs

import "fmt"

// SyntaxError reports an input string that does not fully match any
// position grammar shape.
type SyntaxError struct {
	Input string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid variant position %q", e.Input)
}
