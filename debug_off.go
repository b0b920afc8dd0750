//go:build !debugutils

package debugutils

import "io"

// Enabled reports whether debug output is compiled in.
const Enabled = false

// SetOutput does nothing and returns io.Discard.
func SetOutput(io.Writer) io.Writer { return io.Discard }

// V does nothing.
func V(...any) {}

// Arr does nothing.
func Arr(...any) {}

// M does nothing.
func M(any) {}

// Printer does nothing.
func Printer(string, int, string, ...any) {}

// ArrPrinter does nothing.
func ArrPrinter(string, int, string, ...any) {}

// Msg does nothing.
func Msg(string, int, any) {}

// FileLog is empty; no file is ever created.
type FileLog struct{}

// LogToFile does nothing and returns an empty FileLog.
func LogToFile(string) *FileLog { return &FileLog{} }

// Path returns "".
func (*FileLog) Path() string { return "" }

// Err returns nil.
func (*FileLog) Err() error { return nil }

// Close returns nil.
func (*FileLog) Close() error { return nil }
