package game

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuningYAML []byte

// Timing holds the delays of the deferred transitions and the tick periods.
type Timing struct {
	MatchReveal    time.Duration `yaml:"match_reveal" validate:"gt=0"`
	MismatchReveal time.Duration `yaml:"mismatch_reveal" validate:"gt=0"`
	BallRespawn    time.Duration `yaml:"ball_respawn" validate:"gt=0"`
	TimerPeriod    time.Duration `yaml:"timer_period" validate:"gt=0"`
	FramePeriod    time.Duration `yaml:"frame_period" validate:"gt=0"`
}

// Level is one row of the difficulty table.
type Level struct {
	Level     Difficulty  `yaml:"level"`
	Name      string      `yaml:"name" validate:"required"`
	Values    []CardValue `yaml:"values" validate:"len=4,unique,dive,required"`
	BallStock int         `yaml:"ball_stock" validate:"gte=1"`
}

// HellConfig holds the play-field geometry and physics constants of hell mode.
// All distances are canvas units; speeds are units per frame tick.
type HellConfig struct {
	CanvasWidth        float64 `yaml:"canvas_width" validate:"gt=0"`
	CanvasHeight       float64 `yaml:"canvas_height" validate:"gt=0"`
	Columns            int     `yaml:"columns" validate:"gte=1"`
	Rows               int     `yaml:"rows" validate:"gte=1"`
	CardWidth          float64 `yaml:"card_width" validate:"gt=0"`
	CardHeight         float64 `yaml:"card_height" validate:"gt=0"`
	GridTop            float64 `yaml:"grid_top" validate:"gte=0"`
	RowGap             float64 `yaml:"row_gap" validate:"gte=0"`
	OrbitRadiusMin     float64 `yaml:"orbit_radius_min" validate:"gte=0"`
	OrbitRadiusMax     float64 `yaml:"orbit_radius_max" validate:"gtefield=OrbitRadiusMin"`
	OrbitSpeedMin      float64 `yaml:"orbit_speed_min" validate:"gte=0"`
	OrbitSpeedMax      float64 `yaml:"orbit_speed_max" validate:"gtefield=OrbitSpeedMin"`
	PaddleWidth        float64 `yaml:"paddle_width" validate:"gt=0"`
	PaddleHeight       float64 `yaml:"paddle_height" validate:"gt=0"`
	PaddleBottomOffset float64 `yaml:"paddle_bottom_offset" validate:"gt=0"`
	BallRadius         float64 `yaml:"ball_radius" validate:"gt=0"`
	LaunchSpeed        float64 `yaml:"launch_speed" validate:"gt=0"`
	LaunchJitter       float64 `yaml:"launch_jitter" validate:"gte=0"`
	MaxSpeed           float64 `yaml:"max_speed" validate:"gtefield=LaunchSpeed"`
	PaddleSteer        float64 `yaml:"paddle_steer" validate:"gte=0"`
}

// Tuning is the complete configuration table of the engine.
type Tuning struct {
	Timing Timing     `yaml:"timing"`
	Levels []Level    `yaml:"levels" validate:"len=3,dive"`
	Hell   HellConfig `yaml:"hell"`

	byLevel [numDifficulties]Level
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseTuning decodes and validates a tuning table.
func ParseTuning(data []byte) (*Tuning, error) {
	t := &Tuning{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := validate.Struct(t); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	if t.Hell.Columns*t.Hell.Rows != 2*PairsPerGame {
		return nil, fmt.Errorf("invalid tuning: hell grid %dx%d does not hold %d cards",
			t.Hell.Columns, t.Hell.Rows, 2*PairsPerGame)
	}
	seen := make(map[Difficulty]bool, numDifficulties)
	for _, l := range t.Levels {
		if seen[l.Level] {
			return nil, fmt.Errorf("invalid tuning: level %s listed twice", l.Level)
		}
		seen[l.Level] = true
		t.byLevel[l.Level] = l
	}
	return t, nil
}

// DefaultTuning returns the table embedded in the binary.
func DefaultTuning() (*Tuning, error) {
	return ParseTuning(defaultTuningYAML)
}

// MustDefaultTuning is DefaultTuning for callers that cannot recover, like
// the browser entry point.
func MustDefaultTuning() *Tuning {
	t, err := DefaultTuning()
	if err != nil {
		panic(err)
	}
	return t
}

// Level returns the table row for d.
func (t *Tuning) Level(d Difficulty) Level {
	return t.byLevel[d]
}
