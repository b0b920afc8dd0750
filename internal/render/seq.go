package render

import (
	"cmp"
	"container/list"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

func (p *printer) elements(elems []reflect.Value, elem reflect.Type, depth int) {
	if len(elems) > 0 && iterable(elem) {
		p.block(elems, depth)
		return
	}
	p.WriteByte('{')
	for i, e := range elems {
		if i > 0 {
			p.WriteByte(',')
		}
		p.print(e, depth+1)
	}
	p.WriteByte('}')
}

// block renders a sequence of sequences one element per line, each line
// led by its index.
func (p *printer) block(elems []reflect.Value, depth int) {
	width := indexWidth(len(elems))
	p.WriteString("\n~~~~~\n")
	for i, e := range elems {
		p.WriteString(runewidth.FillRight(strconv.Itoa(i), width))
		p.print(e, depth+1)
		p.WriteByte('\n')
	}
	p.WriteString("~~~~~\n")
}

// indexWidth returns the field width of the index column for n rows: the
// digits of the largest index plus one, never less than two.
func indexWidth(n int) int {
	digits := 0
	if n > 1 {
		digits = int(math.Log10(float64(n - 1)))
	}
	return max(0, digits) + 2
}

func (p *printer) mapping(v reflect.Value, depth int) {
	keys := v.MapKeys()
	slices.SortFunc(keys, compareKeys)
	p.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			p.WriteByte(',')
		}
		p.pair(k, v.MapIndex(k), depth+1)
	}
	p.WriteByte('}')
}

func (p *printer) list(l *list.List, depth int) {
	elems := make([]reflect.Value, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		elems = append(elems, reflect.ValueOf(e.Value))
	}
	p.elements(elems, reflect.TypeFor[any](), depth)
}

// iterator renders range-over-func iterators. Single-value iterators are
// sequences; two-value iterators render their yields as pairs.
func (p *printer) iterator(v reflect.Value, depth int) bool {
	t := v.Type()
	switch {
	case isSeq(t):
		var elems []reflect.Value
		for e := range v.Seq() {
			elems = append(elems, e)
		}
		p.elements(elems, t.In(0).In(0), depth)
		return true
	case isSeq2(t):
		p.WriteByte('{')
		i := 0
		for k, e := range v.Seq2() {
			if i > 0 {
				p.WriteByte(',')
			}
			p.pair(k, e, depth+1)
			i++
		}
		p.WriteByte('}')
		return true
	}
	return false
}

func yieldFunc(t reflect.Type, arity int) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func && y.NumIn() == arity &&
		y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}

func isSeq(t reflect.Type) bool  { return yieldFunc(t, 1) }
func isSeq2(t reflect.Type) bool { return yieldFunc(t, 2) }

// iterable reports whether values of static type t render as sequences.
func iterable(t reflect.Type) bool {
	if t.Implements(reflect.TypeFor[Formatter]()) {
		return false
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	case reflect.Func:
		return isSeq(t) || isSeq2(t)
	}
	return t == reflect.TypeFor[*list.List]()
}

// compareKeys orders map keys: ordered kinds by value, anything else by its
// rendered text.
func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if !a.IsValid() || !b.IsValid() {
		return cmp.Compare(btoi(a.IsValid()), btoi(b.IsValid()))
	}
	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Bool:
		return cmp.Compare(btoi(a.Bool()), btoi(b.Bool()))
	}
	return strings.Compare(text(a), text(b))
}

func text(v reflect.Value) string {
	var p printer
	p.print(v, 0)
	return p.String()
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
