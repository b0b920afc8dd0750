//go:build debugutils

package debugutils

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFileName(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.Local)
	assert.Equal(t, "Test_Log_20240305_070809.log", logFileName("Test_Log", at))
}

func TestLogToFileUsesClock(t *testing.T) {
	t.Chdir(t.TempDir())
	prevNow := now
	now = func() time.Time { return time.Date(2025, time.December, 31, 23, 59, 58, 0, time.Local) }
	t.Cleanup(func() { now = prevNow })
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	t.Cleanup(func() { SetOutput(prev) })

	l := LogToFile("run")
	require.NoError(t, l.Err())
	assert.Equal(t, "run_20251231_235958.log", l.Path())
	require.NoError(t, l.Close())

	_, err := os.Stat("run_20251231_235958.log")
	assert.NoError(t, err)
}

func TestLength(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		want int
	}{
		"int":      {in: 3, want: 3},
		"int64":    {in: int64(4), want: 4},
		"uint8":    {in: uint8(5), want: 5},
		"negative": {in: -2, want: 0},
		"string":   {in: "3", want: -1},
		"nil":      {in: nil, want: -1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, length(tc.in))
		})
	}
}

func TestArray(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		seq  any
		n    int
		want string
	}{
		"prefix":      {seq: []int{1, 2, 3}, n: 2, want: "{1,2}"},
		"all":         {seq: []int{1, 2, 3}, n: -1, want: "{1,2,3}"},
		"zero":        {seq: []int{1}, n: 0, want: "{}"},
		"array":       {seq: [2]bool{true, false}, n: 2, want: "{T,F}"},
		"nil pointer": {seq: (*[2]int)(nil), n: 1, want: "<nil>"},
		"scalar":      {seq: 7, n: 1, want: "7"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, array(tc.seq, tc.n))
		})
	}
}
