// SPDX-License-Identifier: MIT

package poet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/graphpoet/core"
	"go.uber.org/zap"
)

// ErrCorpus marks every failure to open or read a corpus. The underlying
// cause stays reachable through errors.Is / errors.As.
var ErrCorpus = errors.New("poet: corpus unreadable")

// DefaultMaxTokenSize caps a single corpus token (bytes).
const DefaultMaxTokenSize = 1 << 20

// Poet owns a word-affinity graph built once from a corpus.
// Nothing mutates the graph after New returns.
type Poet struct {
	graph *core.Graph[string]
	log   *zap.Logger
}

// Stats summarizes a poet's affinity graph.
type Stats struct {
	Words        int `json:"words"`        // distinct lower-cased corpus words (vertices)
	Pairs        int `json:"pairs"`        // distinct ordered adjacent pairs (edges)
	Tokens       int `json:"tokens"`       // corpus tokens consumed
	Observations int `json:"observations"` // adjacent pairs observed, i.e. the total edge weight
}

type options struct {
	log          *zap.Logger
	maxTokenSize int
}

// Option configures New and NewFromFile.
type Option func(*options)

// WithLogger sets the logger used while building the graph.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMaxTokenSize bounds the length of a single corpus token; longer tokens
// fail construction with ErrCorpus. Values ≤ 0 keep the default.
func WithMaxTokenSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxTokenSize = n
		}
	}
}

// New reads whitespace-delimited tokens from r and builds the affinity graph.
//
// Every token is lower-cased. The first token becomes a vertex; each later
// token next adds one to the weight of current→next and becomes current.
// An empty corpus yields an empty graph.
//
// A read error aborts construction: the error wraps ErrCorpus and no Poet is
// returned.
func New(r io.Reader, opts ...Option) (*Poet, error) {
	o := options{log: zap.NewNop(), maxTokenSize: DefaultMaxTokenSize}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	g := core.NewGraph[string]()

	var (
		current string
		tokens  int
	)
	err := scanWords(r, o.maxTokenSize, func(word string) error {
		next := strings.ToLower(word)
		tokens++
		if tokens == 1 {
			g.AddVertex(next)
			current = next
			return nil
		}
		if _, err := g.SetEdge(current, next, g.Weight(current, next)+1); err != nil {
			return err
		}
		current = next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpus, err)
	}

	p := &Poet{graph: g, log: o.log}
	stats := g.Stats()
	o.log.Debug("affinity graph built",
		zap.Int("tokens", tokens),
		zap.Int("vertices", stats.VertexCount),
		zap.Int("edges", stats.EdgeCount),
		zap.Duration("elapsed", time.Since(start)),
	)

	return p, nil
}

// NewFromFile opens path and delegates to New. Open and read failures wrap
// ErrCorpus together with the *fs.PathError or read error.
func NewFromFile(path string, opts ...Option) (*Poet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpus, err)
	}
	defer f.Close()

	p, err := New(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Graph returns a deep copy of the affinity graph. Mutating the copy never
// affects the poet or any other copy.
func (p *Poet) Graph() *core.Graph[string] {
	return p.graph.Clone()
}

// Stats reports the size of the affinity graph.
func (p *Poet) Stats() Stats {
	s := p.graph.Stats()
	tokens := 0
	if s.VertexCount > 0 {
		tokens = s.TotalWeight + 1
	}

	return Stats{
		Words:        s.VertexCount,
		Pairs:        s.EdgeCount,
		Tokens:       tokens,
		Observations: s.TotalWeight,
	}
}

// String renders the affinity graph.
func (p *Poet) String() string {
	return p.graph.String()
}
