package cell_test

import (
	"testing"

	"github.com/funvibe/pylist/pkg/cell"
	"github.com/stretchr/testify/require"
)

func TestTuple(t *testing.T) {
	test := require.New(t)

	a := cell.New(cell.TupleOf(5, "Reimu"))
	b := cell.New(cell.TupleOf(5, "Sanae"))
	c := cell.New(cell.TupleOf(6, "Marisa"))

	test.Equal("(5, Reimu)", a.String())

	lt, err := a.Less(b)
	test.NoError(err)
	test.True(lt)

	lt, err = c.Less(b)
	test.NoError(err)
	test.False(lt)

	gt, err := c.Greater(a)
	test.NoError(err)
	test.True(gt)

	eq, err := a.Equal(cell.New(cell.TupleOf(5, "Reimu")))
	test.NoError(err)
	test.True(eq)

	lt, err = cell.New(cell.TupleOf(1)).Less(cell.New(cell.TupleOf(1, 2)))
	test.NoError(err)
	test.True(lt)

	_, err = cell.New(cell.TupleOf(1)).Less(cell.New(cell.TupleOf("1")))
	var cmpErr *cell.ComparisonError
	test.ErrorAs(err, &cmpErr)
}

func TestTupleCloneIsDeep(t *testing.T) {
	test := require.New(t)

	orig := cell.TupleOf(1, "x")
	cp := orig.Clone()
	cell.Store(&cp[0], 2)
	test.Equal("(1, x)", orig.String())
	test.Equal("(2, x)", cp.String())
}
