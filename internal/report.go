package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
)

// DocStat is the per-file record: word and line counts keyed by file name.
type DocStat struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Words int    `json:"word_count"`
	Lines int    `json:"line_count"`
}

// RunningMax tracks the largest word and line counts seen so far.
// Updates are monotonic; zero means no file contributed yet.
type RunningMax struct {
	Words int `json:"max_words"`
	Lines int `json:"max_lines"`
}

// Observe folds one record's counts into the maxima.
func (m *RunningMax) Observe(words, lines int) {
	if words > m.Words {
		m.Words = words
	}
	if lines > m.Lines {
		m.Lines = lines
	}
}

// Report collects records during a scan and renders them ranked by word
// count. The maxima live here, not in package state.
type Report struct {
	Docs []DocStat
	Max  RunningMax
}

func NewReport() *Report { return &Report{} }

// Add appends a record and updates the running maxima.
func (r *Report) Add(d DocStat) {
	r.Docs = append(r.Docs, d)
	r.Max.Observe(d.Words, d.Lines)
}

// Ranked returns the records sorted by word count descending. The sort is
// stable: files with equal word counts keep their discovery order.
func (r *Report) Ranked() []DocStat {
	ranked := make([]DocStat, len(r.Docs))
	copy(ranked, r.Docs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Words > ranked[j].Words
	})
	return ranked
}

// percent scales part/max to 0-100 and rounds to the nearest integer, ties
// away from zero. A zero max yields 0 instead of dividing.
func percent(part, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(max) * 100))
}

// Render writes the human-readable report: one block per ranked file.
func (r *Report) Render(w io.Writer) error {
	if len(r.Docs) == 0 {
		_, err := fmt.Fprintln(w, "No matching files found.")
		return err
	}
	for _, d := range r.Ranked() {
		_, err := fmt.Fprintf(w, "%s\n%d%% \t %d words \t %d%% \t %d lines\n\n",
			d.Name, percent(d.Words, r.Max.Words), d.Words, percent(d.Lines, r.Max.Lines), d.Lines)
		if err != nil {
			return err
		}
	}
	return nil
}

// rankedDoc is a DocStat plus its percentages, for JSON output.
type rankedDoc struct {
	DocStat
	WordPercent int `json:"word_percent"`
	LinePercent int `json:"line_percent"`
}

type jsonReport struct {
	Docs     []rankedDoc `json:"docs"`
	MaxWords int         `json:"max_words"`
	MaxLines int         `json:"max_lines"`
}

// RenderJSON writes the ranked report as indented JSON.
func (r *Report) RenderJSON(w io.Writer) error {
	out := jsonReport{
		Docs:     make([]rankedDoc, 0, len(r.Docs)),
		MaxWords: r.Max.Words,
		MaxLines: r.Max.Lines,
	}
	for _, d := range r.Ranked() {
		out.Docs = append(out.Docs, rankedDoc{
			DocStat:     d,
			WordPercent: percent(d.Words, r.Max.Words),
			LinePercent: percent(d.Lines, r.Max.Lines),
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
