// Package render formats arbitrary values for debug output.
//
// A value is rendered by exactly one rule, picked by the capabilities its
// type exposes, in this order:
//
//   - [Formatter] escape hatch
//   - primitives: [Raw], [Char], bools as T/F, strings in double quotes
//   - boolean sequences: []bool and [BitSet] as {T,F,...}
//   - iterables: slices, arrays, maps, *list.List and range-over-func
//     iterators, either flat ({a,b,c}) or, when the element type is itself
//     iterable, as an indexed block between ~~~~~ lines
//   - drainables: containers with Empty, Pop, Top or Front, and Clone
//   - pair-like structs with First and Second fields: (first,second)
//   - [Tupler] values: (c0,c1,...)
//   - everything else through its String or Error method, or fmt's %v
package render

import (
	"container/list"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
)

// maxDepth bounds recursion so that pointer cycles terminate.
const maxDepth = 64

// Formatter is an escape hatch checked before any structural rule. The
// returned string is written verbatim.
type Formatter interface {
	DebugFormat() string
}

// BitSet is a compact boolean sequence that cannot be ranged over as bools.
type BitSet interface {
	Len() int
	Test(i int) bool
}

// Tupler exposes positional components.
type Tupler interface {
	Components() []any
}

// Raw is text printed as is, without quotes.
type Raw string

// Char is a single character, printed in single quotes.
type Char rune

// Pair holds two named components and renders as (first,second).
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns a Pair of first and second.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Tuple is a fixed list of positional components.
type Tuple struct {
	items []any
}

// Tup returns a Tuple of items.
func Tup(items ...any) Tuple {
	return Tuple{items: slices.Clone(items)}
}

// Components returns the tuple's components in order.
func (t Tuple) Components() []any { return t.items }

// Sprint renders v and returns the text.
func Sprint(v any) string {
	var p printer
	p.print(reflect.ValueOf(v), 0)
	return p.String()
}

// Fprint renders v and writes the text to w.
func Fprint(w io.Writer, v any) error {
	_, err := io.WriteString(w, Sprint(v))
	return err
}

type printer struct {
	strings.Builder
}

func (p *printer) print(v reflect.Value, depth int) {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() || isNil(v) {
		p.WriteString("<nil>")
		return
	}
	if depth > maxDepth {
		p.WriteString("...")
		return
	}

	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case Formatter:
			p.WriteString(x.DebugFormat())
			return
		case Raw:
			p.WriteString(string(x))
			return
		case Char:
			p.WriteByte('\'')
			p.WriteRune(rune(x))
			p.WriteByte('\'')
			return
		case BitSet:
			p.bits(x.Len(), x.Test)
			return
		case *list.List:
			p.list(x, depth)
			return
		}
	}

	switch v.Kind() {
	case reflect.Bool:
		p.bool(v.Bool())
		return
	case reflect.String:
		p.WriteByte('"')
		p.WriteString(v.String())
		p.WriteByte('"')
		return
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Bool {
			p.bits(v.Len(), func(i int) bool { return v.Index(i).Bool() })
			return
		}
		elems := make([]reflect.Value, v.Len())
		for i := range elems {
			elems[i] = v.Index(i)
		}
		p.elements(elems, v.Type().Elem(), depth)
		return
	case reflect.Map:
		p.mapping(v, depth)
		return
	case reflect.Func:
		if p.iterator(v, depth) {
			return
		}
	}

	if p.drain(v, depth) {
		return
	}
	if first, second, ok := pairFields(v); ok {
		p.pair(first, second, depth)
		return
	}
	if v.CanInterface() {
		if t, ok := v.Interface().(Tupler); ok {
			p.tuple(t.Components(), depth)
			return
		}
	}
	if v.Kind() == reflect.Pointer && !describes(v) {
		p.print(v.Elem(), depth+1)
		return
	}
	p.plain(v)
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return v.IsNil()
	}
	return false
}

// describes reports whether v carries its own textual representation.
func describes(v reflect.Value) bool {
	if !v.CanInterface() {
		return false
	}
	switch v.Interface().(type) {
	case fmt.Stringer, error:
		return true
	}
	return false
}

func (p *printer) plain(v reflect.Value) {
	if !v.CanInterface() {
		fmt.Fprint(&p.Builder, v)
		return
	}
	switch x := v.Interface().(type) {
	case fmt.Stringer:
		p.WriteString(x.String())
	case error:
		p.WriteString(x.Error())
	default:
		fmt.Fprintf(&p.Builder, "%v", x)
	}
}

func (p *printer) bool(b bool) {
	if b {
		p.WriteByte('T')
	} else {
		p.WriteByte('F')
	}
}

func (p *printer) bits(n int, test func(int) bool) {
	p.WriteByte('{')
	for i := range n {
		if i > 0 {
			p.WriteByte(',')
		}
		p.bool(test(i))
	}
	p.WriteByte('}')
}

func (p *printer) pair(first, second reflect.Value, depth int) {
	p.WriteByte('(')
	p.print(first, depth+1)
	p.WriteByte(',')
	p.print(second, depth+1)
	p.WriteByte(')')
}

func (p *printer) tuple(items []any, depth int) {
	p.WriteByte('(')
	for i, item := range items {
		if i > 0 {
			p.WriteByte(',')
		}
		p.print(reflect.ValueOf(item), depth+1)
	}
	p.WriteByte(')')
}

func pairFields(v reflect.Value) (reflect.Value, reflect.Value, bool) {
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, reflect.Value{}, false
	}
	fs, ok := v.Type().FieldByName("First")
	if !ok || !fs.IsExported() {
		return reflect.Value{}, reflect.Value{}, false
	}
	ss, ok := v.Type().FieldByName("Second")
	if !ok || !ss.IsExported() {
		return reflect.Value{}, reflect.Value{}, false
	}
	first, err := v.FieldByIndexErr(fs.Index)
	if err != nil {
		return reflect.Value{}, reflect.Value{}, false
	}
	second, err := v.FieldByIndexErr(ss.Index)
	if err != nil {
		return reflect.Value{}, reflect.Value{}, false
	}
	return first, second, true
}
