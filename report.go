// Human-readable terminal rendering of a Report.
//
// Colour is plain ANSI, gated behind a flag so output piped to a file
// stays clean. The escape codes are declared locally — the renderer
// needs exactly five of them.
package floret

import (
	"fmt"
	"strings"
)

const (
	ansiReset   = "\x1b[0m"
	ansiCyan    = "\x1b[36m"
	ansiYellow  = "\x1b[33m"
	ansiGreen   = "\x1b[32m"
	ansiMagenta = "\x1b[35m"
)

// Summary renders the report as a sectioned text block, colourized when
// color is true.
func (r *Report) Summary(color bool) string {
	paint := func(code, s string) string {
		if !color {
			return s
		}
		return code + s + ansiReset
	}

	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(&b, "%s\n", paint(ansiCyan, rule))
	fmt.Fprintf(&b, "%s\n", paint(ansiCyan, strings.ToUpper(r.PrimaryName+" vs "+r.SecondaryName+" — linguistic analysis")))
	fmt.Fprintf(&b, "%s\n\n", paint(ansiCyan, rule))

	fmt.Fprintf(&b, "%s\n", paint(ansiYellow, "CORE STATISTICS"))
	fmt.Fprintf(&b, "  lines analyzed:       %d\n", r.Lines)
	fmt.Fprintf(&b, "  total words:          %d\n", r.Words)
	fmt.Fprintf(&b, "  unique vocabulary:    %d\n", r.UniqueWords)
	fmt.Fprintf(&b, "  vocabulary richness:  %.2f%%\n", r.VocabularyRichness*100)
	fmt.Fprintf(&b, "  avg words per line:   %.1f\n\n", r.AverageWordsPerLine)

	fmt.Fprintf(&b, "%s\n", paint(ansiYellow, "LANGUAGE BREAKDOWN"))
	fmt.Fprintf(&b, "  distinctly %s: %d (%.1f%% of vocabulary)\n", r.PrimaryName, r.PrimaryWordCount, r.PrimaryWordPercent)
	fmt.Fprintf(&b, "  distinctly %s: %d (%.1f%% of vocabulary)\n", r.SecondaryName, r.SecondaryWordCount, r.SecondaryWordPercent)
	fmt.Fprintf(&b, "  ambiguous: %d\n\n", r.AmbiguousWordCount)

	fmt.Fprintf(&b, "%s\n", paint(ansiYellow, "FILTER SCORES"))
	fmt.Fprintf(&b, "  %s score: %.3f\n", r.PrimaryName, r.PrimaryScore)
	fmt.Fprintf(&b, "  %s score: %.3f\n", r.SecondaryName, r.SecondaryScore)
	fmt.Fprintf(&b, "  ratio: %.3f\n", r.ScoreRatio)
	fmt.Fprintf(&b, "  overall bias: %s\n", paint(ansiGreen, r.Bias))
	fmt.Fprintf(&b, "  confidence level: %.0f%%\n\n", r.ConfidenceLevel*100)

	if len(r.TopPrimaryWords) > 0 {
		fmt.Fprintf(&b, "%s\n", paint(ansiGreen, "top "+r.PrimaryName+" words"))
		for _, ws := range r.TopPrimaryWords {
			fmt.Fprintf(&b, "  • %s (%.3f)\n", ws.Word, ws.Confidence)
		}
		b.WriteString("\n")
	}
	if len(r.TopSecondaryWords) > 0 {
		fmt.Fprintf(&b, "%s\n", paint(ansiGreen, "top "+r.SecondaryName+" words"))
		for _, ws := range r.TopSecondaryWords {
			fmt.Fprintf(&b, "  • %s (%.3f)\n", ws.Word, ws.Confidence)
		}
		b.WriteString("\n")
	}
	if len(r.PrimaryExpressions) > 0 {
		fmt.Fprintf(&b, "%s\n", paint(ansiMagenta, r.PrimaryName+" expressions detected"))
		for _, hit := range r.PrimaryExpressions {
			fmt.Fprintf(&b, "  • %q (%s) — %d times\n", hit.Phrase, hit.Gloss, hit.Count)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\n", paint(ansiYellow, "MOST NOTABLE LINES"))
	fmt.Fprintf(&b, "  most %s: %q\n", r.PrimaryName, truncate(r.BestPrimaryLine, 80))
	fmt.Fprintf(&b, "  most %s: %q\n", r.SecondaryName, truncate(r.BestSecondaryLine, 80))
	fmt.Fprintf(&b, "%s\n", paint(ansiCyan, rule))

	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
