package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/zixu-w/DPP/dining"
)

func init() { color.NoColor = true }

func TestFormat(t *testing.T) {
	s := dining.Snapshot{
		States:  []dining.State{dining.Eating, dining.Thinking, dining.Waiting},
		Holders: []int{0, dining.Free, 0},
	}
	expected := "" +
		"Philo   State             Fork    Held by\n" +
		"[ 0]:   Eating            [ 0]:      0\n" +
		"[ 1]:   Thinking          [ 1]:   Free\n" +
		"[ 2]:   Waiting           [ 2]:      0\n" +
		"Th= 1 Wa= 1 Ea= 1 Te= 0   Use= 2  Avail= 1\n\n"
	require.Equal(t, expected, Format(s))
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	tbl := New(&buf)
	s := dining.Snapshot{
		States:  []dining.State{dining.Terminated, dining.Terminated},
		Holders: []int{dining.Free, dining.Free},
	}
	require.NoError(t, tbl.Report(s))
	require.NoError(t, tbl.Report(s))
	require.Equal(t, 2, strings.Count(buf.String(), header))
	require.Contains(t, buf.String(), "Te= 2   Use= 0  Avail= 2")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestReportError(t *testing.T) {
	require.EqualError(t, New(failWriter{}).Report(dining.Snapshot{}), "closed")
}
