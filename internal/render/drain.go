package render

import "reflect"

// drainer holds the bound methods of a container that can only be traversed
// by removing elements: stacks, queues, priority queues.
type drainer struct {
	empty reflect.Value
	pop   reflect.Value
	peek  reflect.Value
}

func bindDrainer(v reflect.Value) (drainer, bool) {
	empty := v.MethodByName("Empty")
	pop := v.MethodByName("Pop")
	if !empty.IsValid() || !pop.IsValid() {
		return drainer{}, false
	}
	if et := empty.Type(); et.NumIn() != 0 || et.NumOut() != 1 || et.Out(0).Kind() != reflect.Bool {
		return drainer{}, false
	}
	if pop.Type().NumIn() != 0 {
		return drainer{}, false
	}
	for _, name := range []string{"Top", "Front"} {
		peek := v.MethodByName(name)
		if !peek.IsValid() {
			continue
		}
		if pt := peek.Type(); pt.NumIn() == 0 && pt.NumOut() == 1 {
			return drainer{empty: empty, pop: pop, peek: peek}, true
		}
	}
	return drainer{}, false
}

// cloneOf returns a copy of v made by its Clone method. The method must
// return v's own type.
func cloneOf(v reflect.Value) (reflect.Value, bool) {
	m := v.MethodByName("Clone")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0) != v.Type() {
		return reflect.Value{}, false
	}
	return m.Call(nil)[0], true
}

// drain renders a drainable container by emptying a clone of it, top or
// front first. The original is left untouched.
func (p *printer) drain(v reflect.Value, depth int) bool {
	if !v.CanInterface() {
		return false
	}
	recv := v
	if _, ok := bindDrainer(recv); !ok && v.Kind() != reflect.Pointer {
		// Pointer-receiver methods need an addressable copy.
		recv = reflect.New(v.Type())
		recv.Elem().Set(v)
	}
	if _, ok := bindDrainer(recv); !ok {
		return false
	}
	c, ok := cloneOf(recv)
	if !ok {
		return false
	}
	if isNil(c) {
		p.WriteString("{}")
		return true
	}
	d, _ := bindDrainer(c)

	p.WriteByte('{')
	for i := 0; !d.empty.Call(nil)[0].Bool(); i++ {
		if i > 0 {
			p.WriteByte(',')
		}
		p.print(d.peek.Call(nil)[0], depth+1)
		d.pop.Call(nil)
	}
	p.WriteByte('}')
	return true
}
