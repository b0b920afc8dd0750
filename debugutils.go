package debugutils

import (
	"errors"

	"github.com/bjaus/debugutils/internal/render"
)

// ErrLogFile is wrapped by the error a [FileLog] reports when its file could
// not be created.
var ErrLogFile = errors.New("unable to open debug logging file")

// Formatter takes over the rendering of a value. DebugFormat's result is
// written verbatim.
type Formatter = render.Formatter

// BitSet is a compact boolean sequence; it renders as {T,F,...}.
type BitSet = render.BitSet

// Raw is text printed without quotes.
type Raw = render.Raw

// Char is a single character printed in single quotes.
type Char = render.Char

// Pair renders as (first,second).
type Pair[A, B any] = render.Pair[A, B]

// Tuple renders as (c0,c1,...).
type Tuple = render.Tuple

// MakePair returns a Pair of first and second.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return render.MakePair(first, second)
}

// Tup returns a Tuple of items.
func Tup(items ...any) Tuple { return render.Tup(items...) }
