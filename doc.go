// Package debugutils prints labeled debug values and compiles away entirely
// unless it is built with the debugutils tag.
//
//	go build -tags debugutils ./...
//	go test -tags debugutils ./...
//
// Without the tag every entry point is an empty function that the compiler
// inlines and removes; the formatter, the output slot and the log-file
// plumbing are not part of the package at all. [Enabled] is a constant, so
// code wrapped in
//
//	if debugutils.Enabled { ... }
//
// disappears as well, arguments included.
//
// # Printing values
//
// [V] prints each argument as name = value. Names are the argument
// expressions as written at the call site:
//
//	debugutils.V(ex1, ex3)
//	// main.go(42) [ ex1 = "Test string" || ex3 = (18,2.71828) ]
//
// [Arr] takes alternating sequence and length arguments and prints the
// first length elements of each. [M] prints a single message after the file
// and line. [Printer], [ArrPrinter] and [Msg] are the explicit forms: the
// caller supplies the file, the line and the comma-joined argument names.
//
// # Value formatting
//
// Values are rendered recursively:
//
//   - [Raw] prints as is, [Char] in single quotes, strings in double quotes,
//     bools as T or F
//   - slices, arrays, maps, *list.List and iter.Seq values print as
//     {a,b,c}; maps print their entries as (key,value) in key order
//   - a sequence of sequences prints one indexed row per line between
//     ~~~~~ lines
//   - containers with Empty, Pop, Top or Front, and Clone (see the queue
//     package) print by draining a clone, top or front first
//   - structs with First and Second fields, such as [Pair], print as
//     (first,second); [Tuple] values print as (c0,c1,...)
//   - anything else prints through String, Error or fmt's %v
//
// Implement [Formatter] to take over the rendering of a type.
//
// # Output
//
// Output goes to a single process-wide writer, standard error by default.
// [SetOutput] replaces it and [LogToFile] redirects it to a timestamped file
// until the returned [FileLog] is closed:
//
//	defer debugutils.LogToFile("Test_Log").Close()
//
// The output slot is not synchronized. Debug calls from several goroutines
// must be serialized by the caller.
package debugutils
