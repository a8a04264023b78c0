// Word-list lexicons: filters preset for natural-language corpora.
//
// A Lexicon is a Filter sized for dictionary-scale word lists — 2^22
// bits with 12 probes holds a few hundred thousand words at a
// comfortable false-positive rate — built from a file or reader with
// one word per line. The English words_alpha list (~370k words) fills
// such a filter to roughly 65%.
package floret

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Lexicon geometry. Fixed so that snapshots of the same corpus are
// interchangeable between processes.
const (
	LexiconBits = 1 << 22 // 4 Mbit, 512 KiB packed
	LexiconK    = 12      // probes per word
)

// Lexicon is a filter populated from a word-list corpus. It embeds
// Filter, so all membership, confidence, and serialization operations
// apply directly.
type Lexicon struct {
	*Filter
	words int
}

// NewLexicon builds a lexicon from the named corpus file, one word per
// line. Lines are trimmed and lowercased; blank lines are skipped. An
// empty corpus is ErrEmptyCorpus.
func NewLexicon(path string) (*Lexicon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return NewLexiconReader(file)
}

// NewLexiconReader builds a lexicon from a word-per-line reader. See
// NewLexicon.
func NewLexiconReader(r io.Reader) (*Lexicon, error) {
	// Geometry and hashes are compile-time valid, so New cannot fail.
	f, err := New(LexiconBits, XXH3Low, XXH3High, WithK(LexiconK))
	if err != nil {
		return nil, err
	}

	lex := &Lexicon{Filter: f}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		lex.Add(word)
		lex.words++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if lex.words == 0 {
		return nil, ErrEmptyCorpus
	}
	return lex, nil
}

// EmptyLexicon returns a lexicon with no words, ready to be filled via
// Add or restored from a snapshot of a previously built corpus.
func EmptyLexicon() *Lexicon {
	f, _ := New(LexiconBits, XXH3Low, XXH3High, WithK(LexiconK))
	return &Lexicon{Filter: f}
}

// Words returns the number of words ingested through the corpus reader.
// Restoring from a snapshot does not update it.
func (l *Lexicon) Words() int { return l.words }
