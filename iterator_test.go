package circular

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	l := New(1, 2, 3)

	it := l.Begin()
	for i := 0; i < 3; i++ {
		require.True(t, it.Valid())
		assert.Equal(t, i+1, it.Value())
		it = it.Next()
	}

	assert.False(t, it.Valid())
	assert.True(t, it.Equal(l.End()))

	err := abortErr(func() { it.Next() })
	assert.True(t, errors.Is(err, ErrInvalidPosition), "%v", err)

	err = abortErr(func() { it.Value() })
	assert.True(t, errors.Is(err, ErrInvalidPosition), "%v", err)
}

func TestIteratorPrev(t *testing.T) {
	l := New(1, 2, 3)

	it := l.End().Prev()
	assert.Equal(t, 3, it.Value())
	it = it.Prev().Prev()
	assert.True(t, it.Equal(l.Begin()))

	err := abortErr(func() { it.Prev() })
	assert.True(t, errors.Is(err, ErrInvalidPosition), "%v", err)

	var empty CircularList[int]
	err = abortErr(func() { empty.End().Prev() })
	assert.True(t, errors.Is(err, ErrInvalidPosition), "%v", err)
}

func TestIteratorSingle(t *testing.T) {
	l := New(7)
	assert.True(t, l.Begin().Next().Equal(l.End()))
	assert.True(t, l.End().Prev().Equal(l.Begin()))
}

func TestIteratorSet(t *testing.T) {
	l := New(1, 2, 3)
	for it := l.Begin(); !it.Equal(l.End()); it = it.Next() {
		it.Set(it.Value() * 10)
	}

	assert.Equal(t, []int{10, 20, 30}, l.Values())

	err := abortErr(func() { l.End().Set(0) })
	assert.True(t, errors.Is(err, ErrInvalidPosition), "%v", err)
}

func TestIteratorKeepsHeadItWasCreatedWith(t *testing.T) {
	l := New(1, 2)
	it := l.Begin().Next()
	l.Insert(l.Begin(), 0)

	// walking from the old head, the new head comes after 2
	next := it.Next()
	assert.Equal(t, 0, next.Value())
	assert.False(t, next.Next().Valid())
	assert.Equal(t, []int{0, 1, 2}, l.Values())
}

func TestLoopIterator(t *testing.T) {
	l := New(0, 1, 2)
	assert.True(t, l.LoopBegin().Equal(l.LoopEnd()))

	it := l.LoopBegin()
	for i := 0; i < 7; i++ {
		assert.Equal(t, i%3, it.Value())
		it = it.Next()
	}

	it = l.LoopBegin()
	for i := 0; i < 7; i++ {
		it = it.Prev()
		assert.Equal(t, 2-i%3, it.Value())
	}

	it.Set(5)
	assert.Equal(t, []int{0, 1, 5}, l.Values())
}

func TestLoopIteratorSingle(t *testing.T) {
	l := New(7)
	assert.True(t, l.LoopBegin().Next().Equal(l.LoopEnd()))
	assert.True(t, l.LoopBegin().Prev().Equal(l.LoopEnd()))
}

func TestLoopIteratorUnbound(t *testing.T) {
	var it LoopIterator[int]
	assert.False(t, it.Valid())

	for _, fn := range []func(){
		func() { it.Next() },
		func() { it.Prev() },
		func() { it.Value() },
		func() { it.Set(1) },
	} {
		err := abortErr(fn)
		assert.True(t, errors.Is(err, ErrInvalidPosition), "%v", err)
	}
}

func TestSame(t *testing.T) {
	l := New(0, 1, 2)

	assert.True(t, Same(LoopIterator[int]{}, l.End()))
	assert.True(t, Same(LoopIterator[int]{}, Iterator[int]{}))
	assert.True(t, Same(l.LoopBegin(), l.Begin()))
	assert.True(t, Same(l.LoopBegin().Next(), l.Begin().Next()))
	assert.False(t, Same(l.LoopBegin(), l.End()))
	assert.False(t, Same(LoopIterator[int]{}, l.Begin()))
}

func TestLoopConversion(t *testing.T) {
	l := New(0, 1, 2)

	it := l.End().Prev().Loop()
	assert.Equal(t, 2, it.Value())
	assert.True(t, it.Next().Equal(l.LoopBegin()))
	assert.False(t, l.End().Loop().Valid())
}
