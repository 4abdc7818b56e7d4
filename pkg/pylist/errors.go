package pylist

import "fmt"

// IndexError reports an index outside the list after negative wrapping.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: %d (length %d)", e.Index, e.Len)
}

// SliceStepError reports a slice built with a zero step.
type SliceStepError struct{}

func (e *SliceStepError) Error() string {
	return "slice step must be non-zero"
}
