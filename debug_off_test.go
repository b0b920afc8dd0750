//go:build !debugutils

package debugutils_test

import (
	"io"
	"os"
	"testing"
	"unsafe"

	"github.com/bjaus/debugutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabled(t *testing.T) {
	assert.False(t, debugutils.Enabled)
}

func TestDisabledWritesNothing(t *testing.T) {
	t.Chdir(t.TempDir())
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stderr := os.Stderr
	os.Stderr = w
	t.Cleanup(func() { os.Stderr = stderr })

	assert.Equal(t, io.Discard, debugutils.SetOutput(os.Stdout))
	l := debugutils.LogToFile("Test_Log")
	debugutils.V("x", 1, []int{1, 2})
	debugutils.Arr([]int{1, 2}, 2)
	debugutils.M("message")
	debugutils.Printer("main.go", 1, "a", 1)
	debugutils.ArrPrinter("main.go", 2, "xs, 1", []int{1}, 1)
	debugutils.Msg("main.go", 3, "message")
	require.NoError(t, l.Close())

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, out)

	entries, err := os.ReadDir(".")
	require.NoError(t, err)
	assert.Empty(t, entries, "no log file is created")
}

func TestDisabledFileLog(t *testing.T) {
	t.Parallel()
	l := debugutils.LogToFile("Test_Log")
	assert.Empty(t, l.Path())
	assert.NoError(t, l.Err())
	assert.NoError(t, l.Close())
	assert.Zero(t, unsafe.Sizeof(*l))
}

func TestDisabledDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		debugutils.V(1, "x", true)
		debugutils.Printer("main.go", 1, "a, b", 1, 2)
		debugutils.M("message")
		_ = debugutils.LogToFile("Test_Log").Close()
	})
	assert.Zero(t, allocs)
}
