package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/stretchr/testify/require"
	"github.com/zixu-w/DPP/dining"
)

func TestOrderForks(t *testing.T) {
	first, second := Ordered.Forks(0, 5)
	require.Equal(t, 0, first)
	require.Equal(t, 4, second)
	first, second = LeftRight.Forks(0, 5)
	require.Equal(t, 0, first)
	require.Equal(t, 4, second)
	first, second = LeftRight.Forks(3, 5)
	require.Equal(t, 3, first)
	require.Equal(t, 2, second)

	require.True(t, Ordered.single(0, 1))
	require.False(t, LeftRight.single(0, 1))
	require.Equal(t, "left-right", LeftRight.String())
	require.Equal(t, "Order(7)", Order(7).String())
}

func TestCFSMs(t *testing.T) {
	sys := NewCFSMs(3, Ordered)
	require.Len(t, sys.Phils, 3)
	require.Len(t, sys.Forks, 3)
	for i, m := range sys.Phils {
		require.Equal(t, philName(i), m.Comment)
		require.NotNil(t, m.Start)
	}

	var buf bytes.Buffer
	_, err := sys.WriteTo(&buf)
	require.NoError(t, err)
	for _, msg := range []string{MsgAcquire, MsgGrant, MsgRelease} {
		require.Contains(t, buf.String(), msg)
	}

	var summary bytes.Buffer
	sys.PrintSummary(&summary)
	require.Contains(t, summary.String(), "Total of 6 CFSMs (3 are forks, ordered acquisition)")
	require.Contains(t, summary.String(), "= fork2 (fork)")
}

func TestCFSMsSingle(t *testing.T) {
	sys := NewCFSMs(1, Ordered)
	require.Len(t, sys.Phils, 1)
	require.Len(t, sys.Forks, 1)
	var buf bytes.Buffer
	_, err := sys.WriteTo(&buf)
	require.NoError(t, err)
	require.NotEmpty(t, buf.String())
}

func TestMigoOrdered(t *testing.T) {
	m := NewMigo(3, Ordered)
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	require.Equal(t, 3, strings.Count(out, "newchan"))
	require.Contains(t, out, "spawn phil(fork0, fork2)")
	require.Contains(t, out, "spawn phil(fork0, fork1)")
	require.Contains(t, out, "spawn phil(fork1, fork2)")
	require.Contains(t, out, "recv first")
	require.Contains(t, out, "call phil(first, second)")
	require.NotContains(t, out, "phil1")
}

func TestMigoLeftRight(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewMigo(3, LeftRight).WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "spawn phil(fork0, fork2)")
	require.Contains(t, buf.String(), "spawn phil(fork1, fork0)")
	require.Contains(t, buf.String(), "spawn phil(fork2, fork1)")
}

func TestMigoSingle(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewMigo(1, Ordered).WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "spawn phil1(fork0)")

	buf.Reset()
	_, err = NewMigo(1, LeftRight).WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "spawn phil(fork0, fork0)")
}

func TestTopology(t *testing.T) {
	dot, err := NewTopology(4, Ordered)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = dot.WriteTo(&buf)
	require.NoError(t, err)

	g, err := gographviz.Read(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, g.Nodes.Nodes, 8)
	require.Len(t, g.Edges.Edges, 8)
	require.Contains(t, g.Edges.SrcToDsts["phil0"], "fork0")
	require.Contains(t, g.Edges.SrcToDsts["phil0"], "fork3")
}

func TestTopologySingle(t *testing.T) {
	dot, err := NewTopology(1, Ordered)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = dot.WriteTo(&buf)
	require.NoError(t, err)
	g, err := gographviz.Read(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, g.Edges.Edges, 1)
}

func TestSnapshotGraph(t *testing.T) {
	s := dining.Snapshot{
		States:  []dining.State{dining.Eating, dining.Thinking, dining.Waiting},
		Holders: []int{0, dining.Free, 0},
	}
	dot, err := NewSnapshot(s)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = dot.WriteTo(&buf)
	require.NoError(t, err)

	g, err := gographviz.Read(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, g.Nodes.Nodes, 6)
	require.Contains(t, g.Edges.SrcToDsts["fork0"], "phil0")
	require.Contains(t, g.Edges.SrcToDsts["fork2"], "phil0")
	require.Contains(t, g.Edges.SrcToDsts["phil1"], "fork1")
	require.Contains(t, g.Edges.SrcToDsts["phil2"], "fork1")
	require.Contains(t, buf.String(), "palegreen")
}
