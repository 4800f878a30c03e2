// Package argio reads and writes Attributed Relational Graphs in three
// interchange formats.
//
//   - Binary — a flat sequence of little-endian 16-bit words: node count,
//     then per node its out-degree and target ids. Compact, unattributed.
//   - Text — the same shape in whitespace-separated decimal, one node per
//     line on output. Convenient for fixtures and hand-written graphs.
//   - YAML — a Document of named nodes and labeled edges, frozen into a
//     Graph[string, string]. The reader reports the name table so callers
//     can translate NodeIDs back to document ids.
//
// Every reader funnels through argraph.Build, so a syntactically valid
// stream that describes a malformed graph (out-of-range targets, duplicate
// edges, too many nodes) fails with the corresponding argraph error.
//
// Errors:
//
//	ErrBadHeader   – node count missing or unreadable
//	ErrTruncated   – stream ended mid-adjacency
//	ErrBadDocument – malformed YAML document
package argio
