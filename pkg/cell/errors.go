package cell

import "fmt"

// ComparisonError reports a comparison that the operand types do not support.
type ComparisonError struct {
	Left  Type
	Right Type
	Op    string
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("bad comparison: %s %s %s", e.Left, e.Op, e.Right)
}

func NewComparisonError(left, right Type, op string) *ComparisonError {
	return &ComparisonError{Left: left, Right: right, Op: op}
}

// AccessError reports a read of an empty cell.
type AccessError struct{}

func (e *AccessError) Error() string {
	return "bad cell access"
}

// CastError reports a cast to a type other than the stored one.
type CastError struct {
	From Type
	To   Type
}

func (e *CastError) Error() string {
	return fmt.Sprintf("bad cell cast: from %s to %s", e.From, e.To)
}

func NewCastError(from, to Type) *CastError {
	return &CastError{From: from, To: to}
}
