package queue_test

import (
	"strings"
	"testing"

	"github.com/bjaus/debugutils/queue"
	"github.com/stretchr/testify/assert"
)

func drain[T any](pop func() (T, bool)) []T {
	var out []T
	for {
		v, ok := pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestStack(t *testing.T) {
	t.Parallel()
	s := queue.NewStack[int]()
	assert.True(t, s.Empty())
	assert.Zero(t, s.Top())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Top())
	assert.Equal(t, []int{3, 2, 1}, drain(s.Pop))
	assert.True(t, s.Empty())

	_, ok := s.Pop()
	assert.False(t, ok)
}

func TestQueue(t *testing.T) {
	t.Parallel()
	q := queue.NewQueue("a", "b")
	q.Push("c")
	assert.Equal(t, "a", q.Front())
	assert.Equal(t, "c", q.Back())
	assert.Equal(t, []string{"a", "b", "c"}, drain(q.Pop))
	assert.Empty(t, q.Front())
	assert.Empty(t, q.Back())
}

func TestPriority(t *testing.T) {
	t.Parallel()
	p := queue.NewPriority(5, 1, 4)
	p.Push(3)
	p.Push(9)
	assert.Equal(t, 9, p.Top())
	assert.Equal(t, []int{9, 5, 4, 3, 1}, drain(p.Pop))
	assert.Zero(t, p.Top())
}

func TestPriorityFunc(t *testing.T) {
	t.Parallel()
	// Shortest string first.
	p := queue.NewPriorityFunc(func(a, b string) int {
		return len(b) - len(a)
	}, "ccc", "a", "bb")
	assert.Equal(t, "a", p.Top())
	assert.Equal(t, "a,bb,ccc", strings.Join(drain(p.Pop), ","))
}

func TestPriorityZeroValue(t *testing.T) {
	t.Parallel()
	var p queue.Priority[int]
	assert.True(t, p.Empty())
	assert.Zero(t, p.Len())
	assert.Zero(t, p.Top())
	_, ok := p.Pop()
	assert.False(t, ok)
	assert.True(t, p.Clone().Empty())

	p.Push(4)
	p.Push(4)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []int{4, 4}, drain(p.Pop))
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()
	s := queue.NewStack(1, 2)
	sc := s.Clone()
	sc.Pop()
	sc.Push(7)
	assert.Equal(t, []int{2, 1}, drain(s.Pop))

	q := queue.NewQueue(1, 2)
	qc := q.Clone()
	qc.Pop()
	assert.Equal(t, 2, q.Len())

	p := queue.NewPriority(1, 2, 3)
	pc := p.Clone()
	drain(pc.Pop)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 3, p.Top())
}

func TestNewCopiesItems(t *testing.T) {
	t.Parallel()
	items := []int{1, 2}
	s := queue.NewStack(items...)
	items[1] = 9
	assert.Equal(t, 2, s.Top())
}
