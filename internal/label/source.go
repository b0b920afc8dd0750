package label

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/tools/go/ast/inspector"
)

// Call is the source text of a call's arguments.
type Call struct {
	Args   []string
	Spread bool // the last argument is followed by "..."
}

// Labels returns one label per value for a call that passed n values. A
// spread final argument xs labels its values xs[0], xs[1], and so on.
func (c Call) Labels(n int) []string {
	if !c.Spread || len(c.Args) == 0 {
		return c.Args
	}
	fixed := c.Args[:len(c.Args)-1]
	spread := c.Args[len(c.Args)-1]
	labels := make([]string, len(fixed), max(n, len(fixed)))
	copy(labels, fixed)
	for i := len(fixed); i < n; i++ {
		labels = append(labels, fmt.Sprintf("%s[%d]", spread, i-len(fixed)))
	}
	return labels
}

type source struct {
	fset *token.FileSet
	src  []byte
	ins  *inspector.Inspector
}

// sources caches parsed files by path. Files that fail to load are cached
// as nil.
var sources = xsync.NewMap[string, *source]()

func load(path string) *source {
	s, _ := sources.LoadOrCompute(path, func() (*source, bool) {
		return parse(path), false
	})
	return s
}

func parse(path string) *source {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	fset := token.NewFileSet()
	f, _ := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if f == nil {
		return nil
	}
	return &source{fset: fset, src: src, ins: inspector.New([]*ast.File{f})}
}

// Locate finds the innermost call to a function or method named fn in file
// whose source span covers line and that could have received n values, and
// returns the text of its arguments. Whitespace runs inside an argument
// collapse to a single space. Locate reports false when no call matches or
// when several calls on the line match equally well.
func Locate(file string, line, n int, fn string) (Call, bool) {
	s := load(file)
	if s == nil {
		return Call{}, false
	}

	var calls []*ast.CallExpr
	s.ins.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(nd ast.Node) {
		call := nd.(*ast.CallExpr)
		if calleeName(call.Fun) != fn {
			return
		}
		if line < s.fset.Position(call.Pos()).Line || line > s.fset.Position(call.End()).Line {
			return
		}
		calls = append(calls, call)
	})

	// Drop calls that enclose another candidate.
	calls = slices.DeleteFunc(slices.Clone(calls), func(c *ast.CallExpr) bool {
		return slices.ContainsFunc(calls, func(o *ast.CallExpr) bool {
			return o != c && o.Pos() >= c.Pos() && o.End() <= c.End()
		})
	})
	if len(calls) > 1 {
		calls = slices.DeleteFunc(calls, func(c *ast.CallExpr) bool {
			return !accepts(c, n)
		})
	}
	if len(calls) != 1 {
		return Call{}, false
	}
	found := calls[0]

	tf := s.fset.File(found.Pos())
	args := make([]string, len(found.Args))
	for i, arg := range found.Args {
		text := string(s.src[tf.Offset(arg.Pos()):tf.Offset(arg.End())])
		args[i] = strings.Join(strings.Fields(text), " ")
	}
	return Call{Args: args, Spread: found.Ellipsis.IsValid()}, true
}

// accepts reports whether call could have passed n values.
func accepts(call *ast.CallExpr, n int) bool {
	if call.Ellipsis.IsValid() {
		return n >= len(call.Args)-1
	}
	return len(call.Args) == n
}

func calleeName(fun ast.Expr) string {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	}
	return ""
}
