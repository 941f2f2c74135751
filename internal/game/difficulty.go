package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Difficulty is the closed set of tiers a session can be played at.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard

	numDifficulties
)

// Difficulties lists every tier, in menu order.
var Difficulties = []Difficulty{Easy, Normal, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a tier name ("easy", "normal", "hard") to its enum.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// UnmarshalYAML decodes a tier name, rejecting anything outside the enum.
func (d *Difficulty) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}

// Mode selects plain card flipping or the ball-and-paddle variant.
type Mode int

const (
	Classic Mode = iota
	Hell
)

func (m Mode) String() string {
	switch m {
	case Classic:
		return "classic"
	case Hell:
		return "hell"
	default:
		return "unknown"
	}
}

// ParseMode maps "classic" or "hell" to its enum.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "classic":
		return Classic, nil
	case "hell":
		return Hell, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}
