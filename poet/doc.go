// SPDX-License-Identifier: MIT

// Package poet builds a word-affinity graph from a corpus and uses it to
// splice "bridge words" into input sentences.
//
// Affinity graph: every whitespace-delimited corpus token, lower-cased, is a
// vertex. For each pair of consecutive tokens (w1, w2) the edge w1→w2 carries
// the number of times w2 directly follows w1 anywhere in the corpus.
//
// Poem: for each adjacent pair (w1, w2) of the input, if some word b satisfies
// w1→b and b→w2 in the graph, b is inserted between them. The candidates are
// scanned in the order w1's outgoing edges were first observed and the first
// match wins; weights do not rank candidates. Input words keep their original
// case, bridge words are always lower-case.
//
// Example, with corpus
//
//	To explore strange new worlds
//	To seek out new life and new civilizations
//
// the input "Seek to explore new and exciting synergies!" becomes
// "Seek to explore strange new life and exciting synergies!".
//
// A Poet is immutable once constructed and safe for concurrent use.
package poet
