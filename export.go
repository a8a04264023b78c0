// Report export in machine-readable formats.
//
// JSON carries the full report; CSV flattens the scalar metrics into
// metric/value/category rows and the detail lists into word rows, the
// shape spreadsheet users expect.
package floret

import (
	"encoding/csv"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// WriteJSON writes the full report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteCSV writes the report as metric/value/category rows followed by
// the per-word detail lists.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Metric", "Value", "Category"},
		{"Total Lines", fmt.Sprintf("%d", r.Lines), "Basic"},
		{"Total Words", fmt.Sprintf("%d", r.Words), "Basic"},
		{"Unique Words", fmt.Sprintf("%d", r.UniqueWords), "Basic"},
		{"Vocabulary Richness", fmt.Sprintf("%.4f", r.VocabularyRichness), "Basic"},
		{"Avg Words Per Line", fmt.Sprintf("%.2f", r.AverageWordsPerLine), "Basic"},
		{"Primary Words Count", fmt.Sprintf("%d", r.PrimaryWordCount), "Language"},
		{"Secondary Words Count", fmt.Sprintf("%d", r.SecondaryWordCount), "Language"},
		{"Ambiguous Words Count", fmt.Sprintf("%d", r.AmbiguousWordCount), "Language"},
		{"Primary Word Percentage", fmt.Sprintf("%.2f%%", r.PrimaryWordPercent), "Language"},
		{"Secondary Word Percentage", fmt.Sprintf("%.2f%%", r.SecondaryWordPercent), "Language"},
		{"Primary Score", fmt.Sprintf("%.6f", r.PrimaryScore), "Filter"},
		{"Secondary Score", fmt.Sprintf("%.6f", r.SecondaryScore), "Filter"},
		{"Score Ratio", fmt.Sprintf("%.6f", r.ScoreRatio), "Filter"},
		{"Language Bias", r.Bias, "Filter"},
		{"Confidence Level", fmt.Sprintf("%.4f", r.ConfidenceLevel), "Filter"},
		{"Primary Expressions Count", fmt.Sprintf("%d", len(r.PrimaryExpressions)), "Expression"},
		{"Secondary Expressions Count", fmt.Sprintf("%d", len(r.SecondaryExpressions)), "Expression"},
		{"Exclamatory Percentage", fmt.Sprintf("%.1f%%", r.ExclamatoryPercent), "Expression"},
		{"Question Percentage", fmt.Sprintf("%.1f%%", r.QuestionPercent), "Expression"},
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}

	// Blank separator, then the word detail section.
	if err := cw.Write([]string{}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Word", "Confidence", "Category"}); err != nil {
		return err
	}
	for _, ws := range r.TopPrimaryWords {
		if err := cw.Write([]string{ws.Word, fmt.Sprintf("%.3f", ws.Confidence), "Top " + r.PrimaryName}); err != nil {
			return err
		}
	}
	for _, ws := range r.TopSecondaryWords {
		if err := cw.Write([]string{ws.Word, fmt.Sprintf("%.3f", ws.Confidence), "Top " + r.SecondaryName}); err != nil {
			return err
		}
	}
	for _, wc := range r.MostCommonWords {
		if err := cw.Write([]string{wc.Word, fmt.Sprintf("%d", wc.Count), "Most Common"}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
