// Package graphio parses graph text files into core.Graph stores and
// renders stores back out as adjacency lists.
//
// Two input families are supported:
//
//   - Edge list: one edge per line, "u v" or "u v w", whitespace-separated.
//     A header variant skips the first line (vertex/edge count banners).
//   - Adjacency list: one vertex per line, tab-separated:
//     "u<TAB>v1[,w1]<TAB>v2[,w2] ...".
//
// Weights default to core.DefaultWeight when the column is absent. For
// undirected input that is not already reciprocated, the loader establishes
// the reciprocal-edge invariant once after parsing, by merging a reversed
// copy of the store into itself.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/graphspan/graphspan/core"
)

// Format selects the input file layout.
type Format int

const (
	// FormatEdgeList parses "u v [w]" lines.
	FormatEdgeList Format = iota

	// FormatEdgeListHeader parses "u v [w]" lines, skipping the first line.
	FormatEdgeListHeader

	// FormatAdjacencyList parses "u<TAB>v1[,w1]<TAB>v2[,w2] ..." lines.
	FormatAdjacencyList
)

// Sentinel errors returned by the reader.
var (
	// ErrUnknownFormat indicates an unrecognized Format value.
	ErrUnknownFormat = errors.New("graphio: unknown input format")

	// ErrBadLine indicates a line that does not parse under the selected
	// format. The wrapped error carries the line number and content.
	ErrBadLine = errors.New("graphio: malformed input line")
)

// Options configures the reader.
type Options struct {
	// Format selects the input layout. Default FormatEdgeList.
	Format Format

	// Directed marks the resulting store as directed. Default false.
	Directed bool

	// PreReciprocated marks undirected input whose reciprocal edges are
	// already present in the file, suppressing the reciprocation step.
	PreReciprocated bool
}

// Option is a functional option for configuring Read.
type Option func(*Options)

// WithFormat selects the input layout.
func WithFormat(f Format) Option {
	return func(o *Options) { o.Format = f }
}

// WithDirected marks the input as a directed graph.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithPreReciprocated suppresses construction-time reciprocation for
// undirected input that already lists both directions of every edge.
func WithPreReciprocated() Option {
	return func(o *Options) { o.PreReciprocated = true }
}

// DefaultOptions returns the baseline configuration: edge list, undirected,
// reciprocation enabled.
func DefaultOptions() Options {
	return Options{Format: FormatEdgeList}
}

// Read parses a graph from r under the given options. Blank lines are
// skipped. On success the returned store satisfies the undirected
// reciprocal-edge invariant unless the input was directed or marked
// pre-reciprocated.
func Read(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var parse func(g *core.Graph, line string) error
	switch cfg.Format {
	case FormatEdgeList, FormatEdgeListHeader:
		parse = parseEdgeListLine
	case FormatAdjacencyList:
		parse = parseAdjacencyLine
	default:
		return nil, ErrUnknownFormat
	}

	g := core.NewGraph(core.WithDirected(cfg.Directed))

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if lineNo == 1 && cfg.Format == FormatEdgeListHeader {
			continue // banner line
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := parse(g, line); err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrBadLine, lineNo, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	// Establish the undirected invariant exactly once, at construction.
	if !cfg.Directed && !cfg.PreReciprocated {
		g.Reciprocate()
	}

	return g, nil
}

// ReadFile opens path and parses it via Read.
func ReadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// parseEdgeListLine parses "u v [w]" into one directed edge.
func parseEdgeListLine(g *core.Graph, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return errors.New("need at least two fields")
	}
	from, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return err
	}
	to, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return err
	}
	weight := core.DefaultWeight
	if len(fields) > 2 {
		if weight, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return err
		}
	}
	g.AddEdge(from, to, weight)

	return nil
}

// parseAdjacencyLine parses "u<TAB>v1[,w1]<TAB>v2[,w2] ..." into the
// vertex u and its outgoing edges. A line with no edge columns still
// creates the vertex.
func parseAdjacencyLine(g *core.Graph, line string) error {
	columns := strings.Split(line, "\t")
	origin, err := strconv.ParseInt(strings.TrimSpace(columns[0]), 10, 64)
	if err != nil {
		return err
	}
	g.AddVertex(origin)

	for _, col := range columns[1:] {
		col = strings.TrimSpace(col)
		if col == "" {
			continue
		}
		parts := strings.Split(col, ",")
		to, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return err
		}
		weight := core.DefaultWeight
		if len(parts) > 1 {
			if weight, err = strconv.ParseFloat(parts[1], 64); err != nil {
				return err
			}
		}
		g.AddEdge(origin, to, weight)
	}

	return nil
}

// Write renders g as an adjacency list: one sorted vertex per line,
// followed by its out-edges as "to,weight" columns in insertion order.
// The output round-trips through FormatAdjacencyList with
// WithPreReciprocated for undirected stores.
func Write(w io.Writer, g *core.Graph) error {
	for _, id := range g.Vertices() {
		edges, err := g.OutEdges(id)
		if err != nil {
			return fmt.Errorf("graphio: edges of %d: %w", id, err)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%d", id)
		for _, e := range edges {
			fmt.Fprintf(&b, "\t%d,%g", e.To, e.Weight)
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return fmt.Errorf("graphio: write: %w", err)
		}
	}

	return nil
}
