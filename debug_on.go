//go:build debugutils

package debugutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/bjaus/debugutils/internal/label"
	"github.com/bjaus/debugutils/internal/render"
)

// Enabled reports whether debug output is compiled in.
const Enabled = true

// logTimeLayout is the timestamp part of a log file name: YYYYMMDD_HHMMSS.
const logTimeLayout = "20060102_150405"

var (
	out io.Writer = os.Stderr
	now           = time.Now
)

// SetOutput directs debug output to w and returns the previous writer. A nil
// w restores standard error.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	if w == nil {
		w = os.Stderr
	}
	out = w
	return prev
}

// V prints each value labeled with its argument expression, prefixed by the
// caller's file and line.
func V(values ...any) {
	file, line, call := callSite("V", len(values))
	writeValues(file, line, call.Labels(len(values)), values)
}

// Arr prints sequences given as alternating sequence and length arguments:
//
//	debugutils.Arr(xs, 3, ys, len(ys))
func Arr(args ...any) {
	file, line, call := callSite("Arr", len(args))
	writeArrays(file, line, call.Args, args)
}

// M prints msg after the caller's file and line.
func M(msg any) {
	_, file, line, _ := runtime.Caller(1)
	Msg(file, line, msg)
}

// Printer prints values labeled with the comma-separated expressions in
// names. Commas nested in brackets or quotes do not separate names.
func Printer(file string, line int, names string, values ...any) {
	writeValues(file, line, label.Split(names), values)
}

// ArrPrinter is the explicit form of [Arr]; names holds the comma-separated
// expressions of args.
func ArrPrinter(file string, line int, names string, args ...any) {
	writeArrays(file, line, label.Split(names), args)
}

// Msg prints file(line): msg using msg's default formatting.
func Msg(file string, line int, msg any) {
	write(filepath.Base(file) + "(" + strconv.Itoa(line) + "): " + fmt.Sprint(msg) + "\n")
}

func callSite(fn string, n int) (string, int, label.Call) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "???", 0, label.Call{}
	}
	call, _ := label.Locate(file, line, n, fn)
	return file, line, call
}

func write(s string) {
	_, _ = io.WriteString(out, s)
}

func header(b *strings.Builder, file string, line int) {
	b.WriteString(filepath.Base(file))
	b.WriteByte('(')
	b.WriteString(strconv.Itoa(line))
	b.WriteString(") [ ")
}

func writeValues(file string, line int, labels []string, values []any) {
	var b strings.Builder
	header(&b, file, line)
	for i, v := range values {
		if i > 0 {
			b.WriteString(" || ")
		}
		b.WriteString(label.At(labels, i))
		b.WriteString(" = ")
		b.WriteString(render.Sprint(v))
	}
	if len(values) > 0 {
		b.WriteByte(' ')
	}
	b.WriteString("]\n")
	write(b.String())
}

// writeArrays prints args taken as (sequence, length) pairs. labels holds
// the text of every argument; a pair is labeled by its sequence.
func writeArrays(file string, line int, labels []string, args []any) {
	var b strings.Builder
	header(&b, file, line)
	for i := 0; i < len(args); i += 2 {
		if i > 0 {
			b.WriteString(" || ")
		}
		b.WriteString(label.At(labels, i))
		b.WriteString(" = ")
		n := -1
		if i+1 < len(args) {
			n = length(args[i+1])
		}
		b.WriteString(array(args[i], n))
	}
	if len(args) > 0 {
		b.WriteByte(' ')
	}
	b.WriteString("]\n")
	write(b.String())
}

// array renders the first n elements of seq. A negative n means all of them.
// Values that cannot be indexed render whole.
func array(seq any, n int) string {
	rv := reflect.ValueOf(seq)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Array {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return render.Sprint(seq)
	}
	if n < 0 || n > rv.Len() {
		n = rv.Len()
	}
	var b strings.Builder
	b.WriteByte('{')
	for i := range n {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(render.Sprint(rv.Index(i).Interface()))
	}
	b.WriteByte('}')
	return b.String()
}

// length converts an integer argument to a length. Negative counts yield 0;
// non-integers yield -1 so the whole sequence prints.
func length(v any) int {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := rv.Int(); n >= 0 {
			return int(n)
		}
		return 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int(rv.Uint())
	}
	return -1
}

// FileLog redirects debug output to a log file until it is closed.
type FileLog struct {
	path   string
	file   *os.File
	prev   io.Writer
	err    error
	closed bool
}

// LogToFile creates <prefix>_<YYYYMMDD_HHMMSS>.log and sends debug output to
// it until Close is called. If the file cannot be created, output stays
// where it was, the failure is printed there, and Err reports it.
func LogToFile(prefix string) *FileLog {
	l := &FileLog{path: logFileName(prefix, now())}
	f, err := os.Create(l.path)
	if err != nil {
		l.err = fmt.Errorf("%w %s: %w", ErrLogFile, l.path, err)
		write("Unable to open debug logging file " + l.path + "\n")
		return l
	}
	l.file = f
	l.prev = SetOutput(f)
	write("Error logging redirected to file " + l.path + "\n")
	return l
}

func logFileName(prefix string, t time.Time) string {
	return prefix + "_" + t.Format(logTimeLayout) + ".log"
}

// Path returns the name of the log file, whether or not it was created.
func (l *FileLog) Path() string { return l.path }

// Err returns the error that prevented the log file from being created.
func (l *FileLog) Err() error { return l.err }

// Close announces the end of the log, restores the previous output and
// closes the file. Calls after the first do nothing.
func (l *FileLog) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	write("Closing the debug logging file\n")
	if l.file == nil {
		return nil
	}
	SetOutput(l.prev)
	return l.file.Close()
}
