package game

import "time"

// Rating is the verdict shown at the end of a session.
type Rating struct {
	Tier    string
	Comment string
	Extras  []string
}

type ratingBand struct {
	min     int
	tier    string
	comment string
}

// ratingBands is ordered from best to worst. The same scale serves both modes.
var ratingBands = []ratingBand{
	{14000, "Legend", "Flawless memory. The cards never stood a chance."},
	{12500, "Master", "Sharp eyes and a steady streak."},
	{11000, "Expert", "A strong run with very little wasted."},
	{9500, "Skilled", "Solid play. A longer streak would push you higher."},
	{8000, "Apprentice", "You found your way around the board."},
	{0, "Beginner", "Every master started here. Try again!"},
}

// TopTier is the label of the best rating band.
var TopTier = ratingBands[0].tier

const (
	fastClearRemaining = 90 * time.Second
	fullComboStreak    = 4
)

// RateReport classifies a final report and adds the bonus commentary it earned.
func RateReport(r *Report) Rating {
	var rating Rating
	for _, band := range ratingBands {
		if r.Breakdown.Total >= band.min {
			rating.Tier = band.tier
			rating.Comment = band.comment
			break
		}
	}
	cleared := r.Outcome == OutcomeComplete
	if cleared && r.Remaining >= fastClearRemaining {
		rating.Extras = append(rating.Extras, "Fast clear!")
	}
	if r.Misses == 0 && r.Attempts > 0 {
		rating.Extras = append(rating.Extras, "No miss!")
	}
	if r.Combo >= fullComboStreak {
		rating.Extras = append(rating.Extras, "Full combo!")
	}
	if cleared && r.Mode == Hell {
		rating.Extras = append(rating.Extras, "Hell clear!")
	}
	return rating
}
