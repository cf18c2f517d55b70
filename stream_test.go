package gridprint_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/bjaus/gridprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintSeq(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := gridprint.FprintSeq(&buf, gridprint.New(3, 4), slices.Values(numbers))
	require.NoError(t, err)
	assert.Equal(t, gridprint.Sprint(gridprint.New(3, 4), numbers), buf.String())
}

func TestFprintSeqDoesNotPullExcessRows(t *testing.T) {
	t.Parallel()
	pulled := 0
	seq := func(yield func([]string) bool) {
		for _, row := range [][]string{{"a"}, {"bb"}, {"cccccccc"}} {
			pulled++
			if !yield(row) {
				return
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, gridprint.FprintSeq(&buf, gridprint.New(2, 1), seq))
	assert.Equal(t, "a   \nbb  \n", buf.String())
	assert.Equal(t, 2, pulled)
}

func TestFprintChan(t *testing.T) {
	t.Parallel()
	ch := make(chan []int, len(numbers))
	for _, row := range numbers {
		ch <- row
	}
	close(ch)

	var buf bytes.Buffer
	err := gridprint.FprintChan(&buf, gridprint.New(4, 4), ch)
	require.NoError(t, err)
	want := "" +
		"1  2   3   4   \n" +
		"5  6   7   8   \n" +
		"9  10  11  12  \n" +
		"   " + "    " + "    " + "    " + "\n"
	assert.Equal(t, want, buf.String())
}

func TestFprintChanStopsReceiving(t *testing.T) {
	t.Parallel()
	ch := make(chan []int, 3)
	for _, row := range numbers {
		ch <- row
	}
	var buf bytes.Buffer
	require.NoError(t, gridprint.FprintChan(&buf, gridprint.New(1, 4), ch))
	assert.Equal(t, "1  2  3  4  \n", buf.String())
	assert.Len(t, ch, 2)
}

func TestFprintSeqWriteError(t *testing.T) {
	t.Parallel()
	err := gridprint.FprintSeq(&errWriter{}, gridprint.New(3, 4), slices.Values(numbers))
	require.ErrorIs(t, err, gridprint.ErrOutput)
}
