// SPDX-License-Identifier: MIT

// Package graphpoet turns a text corpus into a word-affinity graph and uses it
// to make poems a little stranger.
//
// What is graphpoet?
//
//	A small, thread-safe toolkit built from two layers:
//		• core: a generic weighted directed graph with deterministic,
//		  insertion-ordered enumeration
//		• poet: reads a corpus, counts how often each word follows another,
//		  and inserts a "bridge" word between input words w1 and w2 whenever
//		  the corpus contains w1 → b → w2
//
// Example:
//
//	corpus: "To explore strange new worlds / To seek out new life and new civilizations"
//	input:  "Seek to explore new and exciting synergies!"
//	output: "Seek to explore strange new life and exciting synergies!"
//
// Under the hood:
//
//	core/                  Graph[V], vertices, weighted edges, Clone, Stats
//	poet/                  corpus tokenizer, affinity graph, Bridge, Poem
//	internal/config/       YAML configuration with validation
//	internal/observability zap logger and Prometheus collector
//	internal/server/       chi HTTP API over an atomically swapped snapshot
//	internal/watch/        fsnotify corpus hot reload
//	cmd/graphpoet/         cobra CLI: poem, graph, bridge, serve
//
// Bridge candidates are tried in the order the corpus first produced them;
// weights are recorded but never rank candidates. Two runs over the same
// corpus and input always print the same poem.
package graphpoet
