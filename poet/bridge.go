// SPDX-License-Identifier: MIT

package poet

import (
	"strings"

	"go.uber.org/zap"
)

// Insertion records one bridge word spliced into a poem.
type Insertion struct {
	Index  int    // position of Bridge in the output words
	Before string // input word preceding the bridge, original case
	Bridge string // inserted word, lower-case
	After  string // input word following the bridge, original case
}

// Bridge looks for a word b with current→b and b→next in the affinity graph.
// Both arguments are lower-cased first.
//
// Candidates are tried in the order current's outgoing edges were first seen
// in the corpus; the first b that reaches next wins, whatever the weights.
// The second result is false when no bridge exists.
func (p *Poet) Bridge(current, next string) (string, bool) {
	current = strings.ToLower(current)
	next = strings.ToLower(next)

	for c := p.graph.Targets(current).Oldest(); c != nil; c = c.Next() {
		if p.graph.HasEdge(c.Key, next) {
			return c.Key, true
		}
	}

	return "", false
}

// Poem returns input with a bridge word inserted between every adjacent pair
// of words that has one. Input words keep their case and are re-joined with
// single spaces; empty or all-whitespace input yields "".
func (p *Poet) Poem(input string) string {
	poem, _ := p.Compose(input)

	return poem
}

// Compose is Poem that also reports each insertion it made.
func (p *Poet) Compose(input string) (string, []Insertion) {
	words := Words(input)
	if len(words) == 0 {
		return "", nil
	}

	out := make([]string, 0, 2*len(words)-1)
	out = append(out, words[0])
	var inserted []Insertion
	current := words[0]
	for _, next := range words[1:] {
		if bridge, ok := p.Bridge(current, next); ok {
			inserted = append(inserted, Insertion{
				Index:  len(out),
				Before: current,
				Bridge: bridge,
				After:  next,
			})
			out = append(out, bridge)
		}
		out = append(out, next)
		current = next
	}

	p.log.Debug("poem composed",
		zap.Int("input_words", len(words)),
		zap.Int("bridges", len(inserted)),
	)

	return strings.Join(out, " "), inserted
}
