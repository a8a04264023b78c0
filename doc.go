// Package floret provides a probabilistic membership filter with a graded
// confidence query, plus the corpus and scoring tools built on top of it
// for lightweight language analysis.
//
// The core type is Filter, a bloom filter over strings. Beyond the usual
// Add/Contains operations it exposes Confidence, which reports the
// fraction of an item's probe bits that are currently set. Confidence is
// a heuristic match-strength signal — not a calibrated probability — but
// it is what makes the filter useful for fuzzy questions like "how French
// does this word look", where a boolean answer throws away too much.
//
// Probe positions are derived with enhanced double hashing: two
// caller-supplied hash functions are evaluated once per item and combined
// as h1 + i*h2 (mod size) for i in 0..k-1. Hash functions are injected at
// construction through the Hasher interface; the package ships xxh3,
// FNV-1a and Blake2b variants.
//
// A filter's bit vector serializes to a flat packed image of exactly
// ceil(size/8) bytes via Dump and Ingest. Bit i of the vector lives at
// bits[i/8] & (1 << (i%8)) — LSB-first within each byte. This convention
// is fixed; images written by one process round-trip into any filter
// constructed with the same size. For on-disk storage, WriteSnapshot and
// ReadSnapshot wrap the image in a self-describing, zstd-compressed
// container that records the filter's parameters.
//
// On top of the filter sit Lexicon (a filter preset sized for word-list
// corpora), LogScore and BestLine (logarithmic confidence aggregation),
// Trigrams (diacritic-folded trigram extraction), and Analyzer, which
// compares a text against two lexicons and produces a Report exportable
// as JSON, CSV, or a coloured terminal summary.
//
// A Filter is not safe for concurrent mutation. Build it in one
// goroutine, then share it freely: every operation except Add and Ingest
// is read-only.
package floret
