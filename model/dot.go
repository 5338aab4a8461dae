package model

import (
	"fmt"
	"io"

	"github.com/awalterschulze/gographviz"
	"github.com/zixu-w/DPP/dining"
)

var stateColour = map[dining.State]string{
	dining.Thinking:   "lightblue",
	dining.Waiting:    "gold",
	dining.Eating:     "palegreen",
	dining.Terminated: "grey",
}

// GraphvizDot is a graphviz dot graph of a table.
type GraphvizDot struct {
	Graph *gographviz.Escape
}

func newGraph(name string) *GraphvizDot {
	dot := &GraphvizDot{Graph: gographviz.NewEscape()}
	dot.Graph.SetDir(true)
	dot.Graph.SetName(name)
	return dot
}

// NewTopology creates the ring of a table of n. Each philosopher has an
// edge to each of its forks labelled with the order it is taken.
func NewTopology(n int, order Order) (*GraphvizDot, error) {
	dot := newGraph("table")
	for f := 0; f < n; f++ {
		if err := dot.Graph.AddNode(dot.Graph.Name, forkName(f), map[string]string{"shape": "box"}); err != nil {
			return nil, err
		}
	}
	for id := 0; id < n; id++ {
		if err := dot.Graph.AddNode(dot.Graph.Name, philName(id), map[string]string{"shape": "circle"}); err != nil {
			return nil, err
		}
		first, second := order.Forks(id, n)
		if err := dot.Graph.AddEdge(philName(id), forkName(first), true, map[string]string{"label": "1"}); err != nil {
			return nil, err
		}
		if order.single(id, n) {
			continue
		}
		if err := dot.Graph.AddEdge(philName(id), forkName(second), true, map[string]string{"label": "2"}); err != nil {
			return nil, err
		}
	}
	return dot, nil
}

// NewSnapshot creates a graph of a snapshot. Philosophers are coloured by
// state and a held fork has an edge to its holder.
func NewSnapshot(s dining.Snapshot) (*GraphvizDot, error) {
	dot := newGraph("snapshot")
	n := len(s.States)
	for id, st := range s.States {
		attrs := map[string]string{
			"shape":     "circle",
			"style":     "filled",
			"fillcolor": stateColour[st],
			"label":     fmt.Sprintf("%d %s", id, st),
		}
		if err := dot.Graph.AddNode(dot.Graph.Name, philName(id), attrs); err != nil {
			return nil, err
		}
	}
	for f, h := range s.Holders {
		if err := dot.Graph.AddNode(dot.Graph.Name, forkName(f), map[string]string{"shape": "box"}); err != nil {
			return nil, err
		}
		if h != dining.Free {
			if err := dot.Graph.AddEdge(forkName(f), philName(h), true, map[string]string{"label": "held"}); err != nil {
				return nil, err
			}
			continue
		}
		a, b := dining.Sharers(f, n)
		for _, id := range []int{a, b} {
			if err := dot.Graph.AddEdge(philName(id), forkName(f), true, map[string]string{"style": "dashed", "dir": "none"}); err != nil {
				return nil, err
			}
			if a == b {
				break
			}
		}
	}
	return dot, nil
}

// WriteTo implements io.WriterTo interface.
func (dot *GraphvizDot) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte(dot.Graph.String()))
	return int64(n), err
}
