package game

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeComplete Outcome = iota
	OutcomeTimeUp
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomeTimeUp:
		return "time-up"
	case OutcomeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Report is the terminal summary of a session.
type Report struct {
	SessionID    string
	Difficulty   Difficulty
	Mode         Mode
	Outcome      Outcome
	MatchedPairs int
	TotalPairs   int
	Elapsed      time.Duration
	Remaining    time.Duration
	Attempts     int
	Misses       int
	Combo        int
	MaxCombo     int
	Breakdown    Breakdown
	Rating       Rating
}

// SummaryMarker appears in every final summary; messages carrying it are
// not auto-dismissed.
const SummaryMarker = "Final score"

var summaryTemplate = template.Must(template.New("summary").Funcs(template.FuncMap{
	"clock":    FormatClock,
	"join":     strings.Join,
	"headline": headline,
}).Parse(`{{headline .}}
{{.MatchedPairs}}/{{.TotalPairs}} pairs in {{clock .Elapsed}} ({{.Attempts}} attempts, {{.Misses}} misses, best combo {{.MaxCombo}})
Score {{.Breakdown.Base}} + time {{.Breakdown.TimeBonus}} + accuracy {{.Breakdown.AccuracyBonus}} + combo {{.Breakdown.ComboBonus}}
` + SummaryMarker + `: {{.Breakdown.Total}}
Rank: {{.Rating.Tier}}. {{.Rating.Comment}}{{if .Rating.Extras}}
{{join .Rating.Extras " "}}{{end}}`))

func headline(r *Report) (string, error) {
	switch r.Outcome {
	case OutcomeComplete:
		return "Congratulations! You found every pair!", nil
	case OutcomeTimeUp:
		return "Time's up!", nil
	case OutcomeGameOver:
		return "Game over! No balls left.", nil
	}
	return "", fmt.Errorf("no headline for outcome %d", r.Outcome)
}

// Narrate renders the detailed final summary of r.
func Narrate(r *Report) (string, error) {
	var buf bytes.Buffer
	if err := summaryTemplate.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("failed to narrate report: %w", err)
	}
	return buf.String(), nil
}

// PlainSummary is the minimal summary used when Narrate fails.
func PlainSummary(r *Report) string {
	return fmt.Sprintf("Game finished (%s). %s: %d", r.Outcome, SummaryMarker, r.Breakdown.Total)
}
