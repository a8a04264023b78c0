// Two-lexicon linguistic analysis.
//
// Analyzer compares a text against a primary and a secondary lexicon
// (typically French vs English) and produces a Report: word and line
// statistics, per-word language classification by confidence, phrase
// detection, and overall bias scores. The thresholds follow the same
// scheme throughout: a word is distinctly in one language when its
// confidence there is high (> strong threshold) and low in the other
// (< weak threshold), and ambiguous when both sit above the middle.
package floret

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Classification threshold defaults.
const (
	defaultStrongThreshold    = 0.7
	defaultWeakThreshold      = 0.3
	defaultAmbiguousThreshold = 0.5
	defaultTopWords           = 10
)

// cleanPattern strips everything except letters, digits and apostrophes.
// Unicode classes, not \w: the texts being analyzed carry accented
// letters that must survive cleaning.
var cleanPattern = regexp.MustCompile(`[^\p{L}\p{N}']+`)

// AnalyzerConfig holds analysis options. The zero value gives neutral
// names ("primary"/"secondary"), no expression tables, and the default
// thresholds.
type AnalyzerConfig struct {
	PrimaryName          string            // Label for the primary lexicon (default "primary")
	SecondaryName        string            // Label for the secondary lexicon (default "secondary")
	PrimaryExpressions   map[string]string // phrase → gloss, counted in the primary column
	SecondaryExpressions map[string]string // phrase → gloss, counted in the secondary column
	StrongThreshold      float64           // Confidence above which a word is a strong match (default 0.7)
	WeakThreshold        float64           // Confidence below which a word is a clear miss (default 0.3)
	AmbiguousThreshold   float64           // Both-above means ambiguous (default 0.5)
	TopWords             int               // Length of the detail lists (default 10)
}

// FrenchExpressions and EnglishExpressions are ready-made phrase tables
// for French-vs-English analysis.
var (
	FrenchExpressions = map[string]string{
		"mon dieu":    "My God",
		"sacrebleu":   "Damn it!",
		"merde":       "Shit",
		"voila":       "There it is",
		"tres bon":    "Very good",
		"fantastique": "Fantastic",
		"bon":         "Good",
	}
	EnglishExpressions = map[string]string{
		"gentlemen":   "Gentlemen",
		"excellent":   "Excellent",
		"magnificent": "Magnificent",
		"splendid":    "Splendid",
		"marvelous":   "Marvelous",
	}
)

// Analyzer compares texts against two lexicons.
type Analyzer struct {
	primary   *Lexicon
	secondary *Lexicon
	config    AnalyzerConfig
}

// NewAnalyzer returns an analyzer over the two lexicons with defaults
// applied to any zero-valued config fields.
func NewAnalyzer(primary, secondary *Lexicon, config AnalyzerConfig) *Analyzer {
	if config.PrimaryName == "" {
		config.PrimaryName = "primary"
	}
	if config.SecondaryName == "" {
		config.SecondaryName = "secondary"
	}
	if config.StrongThreshold == 0 {
		config.StrongThreshold = defaultStrongThreshold
	}
	if config.WeakThreshold == 0 {
		config.WeakThreshold = defaultWeakThreshold
	}
	if config.AmbiguousThreshold == 0 {
		config.AmbiguousThreshold = defaultAmbiguousThreshold
	}
	if config.TopWords == 0 {
		config.TopWords = defaultTopWords
	}
	return &Analyzer{primary: primary, secondary: secondary, config: config}
}

// WordCount is a word with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordScore is a word with its confidence against one lexicon.
type WordScore struct {
	Word       string  `json:"word"`
	Confidence float64 `json:"confidence"`
}

// WordBias is a word with its confidence against both lexicons.
type WordBias struct {
	Word      string  `json:"word"`
	Primary   float64 `json:"primary_confidence"`
	Secondary float64 `json:"secondary_confidence"`
}

// ExpressionHit is a detected phrase with its gloss and count.
type ExpressionHit struct {
	Phrase string `json:"phrase"`
	Gloss  string `json:"gloss"`
	Count  int    `json:"count"`
}

// Report holds the full result of analyzing one text.
type Report struct {
	PrimaryName   string `json:"primary_name"`
	SecondaryName string `json:"secondary_name"`

	Lines               int     `json:"total_lines"`
	Words               int     `json:"total_words"`
	UniqueWords         int     `json:"unique_words"`
	AverageWordsPerLine float64 `json:"average_words_per_line"`
	VocabularyRichness  float64 `json:"vocabulary_richness"`
	ExclamatoryPercent  float64 `json:"exclamatory_percentage"`
	QuestionPercent     float64 `json:"question_percentage"`

	MostCommonWords []WordCount `json:"most_common_words"`

	PrimaryWordCount     int         `json:"primary_word_count"`
	SecondaryWordCount   int         `json:"secondary_word_count"`
	AmbiguousWordCount   int         `json:"ambiguous_word_count"`
	PrimaryWordPercent   float64     `json:"primary_word_percentage"`
	SecondaryWordPercent float64     `json:"secondary_word_percentage"`
	TopPrimaryWords      []WordScore `json:"top_primary_words"`
	TopSecondaryWords    []WordScore `json:"top_secondary_words"`
	TopAmbiguousWords    []WordBias  `json:"top_ambiguous_words"`

	PrimaryExpressions   []ExpressionHit `json:"primary_expressions"`
	SecondaryExpressions []ExpressionHit `json:"secondary_expressions"`

	PrimaryScore      float64 `json:"primary_score"`
	SecondaryScore    float64 `json:"secondary_score"`
	ScoreRatio        float64 `json:"score_ratio"`
	Bias              string  `json:"language_bias"`
	ConfidenceLevel   float64 `json:"confidence_level"`
	BestPrimaryLine   string  `json:"best_primary_line"`
	BestSecondaryLine string  `json:"best_secondary_line"`
}

// Analyze reads a text line by line and produces a Report.
func (a *Analyzer) Analyze(r io.Reader) (*Report, error) {
	var originals []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			originals = append(originals, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Cleaned lines: punctuation collapsed, lowercased, single-character
	// leftovers dropped.
	var cleaned []string
	for _, line := range originals {
		c := strings.ToLower(strings.TrimSpace(cleanPattern.ReplaceAllString(line, " ")))
		if utf8.RuneCountInString(c) > 1 {
			cleaned = append(cleaned, c)
		}
	}

	counts := make(map[string]int)
	totalWords := 0
	for _, line := range cleaned {
		for _, word := range strings.Fields(line) {
			if utf8.RuneCountInString(word) <= 1 {
				continue
			}
			counts[word]++
			totalWords++
		}
	}

	rep := &Report{
		PrimaryName:   a.config.PrimaryName,
		SecondaryName: a.config.SecondaryName,
		Lines:         len(originals),
		Words:         totalWords,
		UniqueWords:   len(counts),
	}
	if rep.Lines > 0 {
		rep.AverageWordsPerLine = float64(totalWords) / float64(rep.Lines)
	}
	if totalWords > 0 {
		rep.VocabularyRichness = float64(len(counts)) / float64(totalWords)
	}

	a.lineStats(rep, originals)
	rep.MostCommonWords = mostCommon(counts, a.config.TopWords)
	a.classifyWords(rep, counts)
	a.matchExpressions(rep, originals)
	a.scoreLines(rep, cleaned)

	return rep, nil
}

// lineStats fills the exclamatory and question percentages.
func (a *Analyzer) lineStats(rep *Report, originals []string) {
	if len(originals) == 0 {
		return
	}
	exclaim, question := 0, 0
	for _, line := range originals {
		if strings.Contains(line, "!") {
			exclaim++
		}
		if strings.Contains(line, "?") {
			question++
		}
	}
	rep.ExclamatoryPercent = float64(exclaim) / float64(len(originals)) * 100
	rep.QuestionPercent = float64(question) / float64(len(originals)) * 100
}

// mostCommon returns the n highest-count words, count descending with
// alphabetical tiebreak for deterministic output.
func mostCommon(counts map[string]int, n int) []WordCount {
	all := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		all = append(all, WordCount{Word: word, Count: count})
	}
	slices.SortFunc(all, func(x, y WordCount) int {
		if c := cmp.Compare(y.Count, x.Count); c != 0 {
			return c
		}
		return cmp.Compare(x.Word, y.Word)
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// classifyWords buckets every unique word by confidence against the two
// lexicons and fills the counts, percentages, and top-N detail lists.
func (a *Analyzer) classifyWords(rep *Report, counts map[string]int) {
	var primary []WordScore
	var secondary []WordScore
	var ambiguous []WordBias

	for word := range counts {
		pc := a.primary.Confidence(word)
		sc := a.secondary.Confidence(word)
		switch {
		case pc > a.config.StrongThreshold && sc < a.config.WeakThreshold:
			primary = append(primary, WordScore{Word: word, Confidence: pc})
		case sc > a.config.StrongThreshold && pc < a.config.WeakThreshold:
			secondary = append(secondary, WordScore{Word: word, Confidence: sc})
		case pc > a.config.AmbiguousThreshold && sc > a.config.AmbiguousThreshold:
			ambiguous = append(ambiguous, WordBias{Word: word, Primary: pc, Secondary: sc})
		}
	}

	rep.PrimaryWordCount = len(primary)
	rep.SecondaryWordCount = len(secondary)
	rep.AmbiguousWordCount = len(ambiguous)
	if rep.UniqueWords > 0 {
		rep.PrimaryWordPercent = float64(len(primary)) / float64(rep.UniqueWords) * 100
		rep.SecondaryWordPercent = float64(len(secondary)) / float64(rep.UniqueWords) * 100
	}

	byConfidence := func(x, y WordScore) int {
		if c := cmp.Compare(y.Confidence, x.Confidence); c != 0 {
			return c
		}
		return cmp.Compare(x.Word, y.Word)
	}
	slices.SortFunc(primary, byConfidence)
	slices.SortFunc(secondary, byConfidence)
	slices.SortFunc(ambiguous, func(x, y WordBias) int {
		if c := cmp.Compare(max(y.Primary, y.Secondary), max(x.Primary, x.Secondary)); c != 0 {
			return c
		}
		return cmp.Compare(x.Word, y.Word)
	})

	n := a.config.TopWords
	rep.TopPrimaryWords = primary[:min(n, len(primary))]
	rep.TopSecondaryWords = secondary[:min(n, len(secondary))]
	rep.TopAmbiguousWords = ambiguous[:min(n, len(ambiguous))]
}

// matchExpressions counts whole-phrase occurrences of both expression
// tables over the full lowercased text.
func (a *Analyzer) matchExpressions(rep *Report, originals []string) {
	text := strings.ToLower(strings.Join(originals, " "))
	rep.PrimaryExpressions = countPhrases(text, a.config.PrimaryExpressions)
	rep.SecondaryExpressions = countPhrases(text, a.config.SecondaryExpressions)
}

func countPhrases(text string, table map[string]string) []ExpressionHit {
	var hits []ExpressionHit
	for phrase, gloss := range table {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
		if err != nil {
			continue
		}
		if n := len(re.FindAllStringIndex(text, -1)); n > 0 {
			hits = append(hits, ExpressionHit{Phrase: phrase, Gloss: gloss, Count: n})
		}
	}
	slices.SortFunc(hits, func(x, y ExpressionHit) int {
		if c := cmp.Compare(y.Count, x.Count); c != 0 {
			return c
		}
		return cmp.Compare(x.Phrase, y.Phrase)
	})
	return hits
}

// scoreLines computes the overall bias scores from the best-scoring
// line per lexicon, over deduplicated cleaned lines.
func (a *Analyzer) scoreLines(rep *Report, cleaned []string) {
	seen := make(map[string]struct{}, len(cleaned))
	unique := make([]string, 0, len(cleaned))
	for _, line := range cleaned {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		unique = append(unique, line)
	}

	rep.BestPrimaryLine, rep.PrimaryScore = BestLine(a.primary.Filter, unique)
	rep.BestSecondaryLine, rep.SecondaryScore = BestLine(a.secondary.Filter, unique)

	// Ratio left at 0 when the secondary score is non-positive: an
	// infinity would poison JSON export, and Bias plus ConfidenceLevel
	// already carry the verdict in that case.
	if rep.SecondaryScore > 0 {
		rep.ScoreRatio = rep.PrimaryScore / rep.SecondaryScore
	}
	if rep.PrimaryScore > rep.SecondaryScore {
		rep.Bias = a.config.PrimaryName
	} else {
		rep.Bias = a.config.SecondaryName
	}
	if m := max(rep.PrimaryScore, rep.SecondaryScore); m > 0 {
		rep.ConfidenceLevel = math.Abs(rep.PrimaryScore-rep.SecondaryScore) / m
	}
}

// String implements fmt.Stringer with a one-line verdict.
func (r *Report) String() string {
	return fmt.Sprintf("%s bias (%.3f vs %.3f, confidence %.0f%%)",
		r.Bias, r.PrimaryScore, r.SecondaryScore, r.ConfidenceLevel*100)
}
