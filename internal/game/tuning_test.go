package game

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuning(t *testing.T) {
	tuning, err := DefaultTuning()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, tuning.Timing.MatchReveal)
	assert.Equal(t, time.Second, tuning.Timing.MismatchReveal)
	assert.Equal(t, time.Second, tuning.Timing.BallRespawn)
	assert.Equal(t, 100*time.Millisecond, tuning.Timing.TimerPeriod)

	stocks := map[Difficulty]int{Easy: 5, Normal: 4, Hard: 3}
	for d, want := range stocks {
		level := tuning.Level(d)
		assert.Equal(t, d, level.Level)
		assert.Equal(t, want, level.BallStock, "ball stock for %s", d)
		assert.Len(t, level.Values, 4)
	}
	assert.Equal(t, []CardValue{"あ", "お", "ぬ", "め"}, tuning.Level(Normal).Values)
	assert.Equal(t, 8.0, tuning.Hell.MaxSpeed)
}

func TestParseTuningRejects(t *testing.T) {
	base := string(defaultTuningYAML)
	for name, mutate := range map[string]func(string) string{
		"unknown level": func(s string) string {
			return strings.Replace(s, "level: hard", "level: nightmare", 1)
		},
		"duplicate level": func(s string) string {
			return strings.Replace(s, "level: hard", "level: easy", 1)
		},
		"duplicate value": func(s string) string {
			return strings.Replace(s, "[あ, か, さ, た]", "[あ, あ, さ, た]", 1)
		},
		"three values": func(s string) string {
			return strings.Replace(s, "[あ, か, さ, た]", "[あ, か, さ]", 1)
		},
		"no balls": func(s string) string {
			return strings.Replace(s, "ball_stock: 3", "ball_stock: 0", 1)
		},
		"grid too small": func(s string) string {
			return strings.Replace(s, "rows: 2", "rows: 1", 1)
		},
		"not yaml": func(string) string { return "levels: [" },
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTuning([]byte(mutate(base)))
			assert.Error(t, err)
		})
	}
}

func TestParseDifficultyAndMode(t *testing.T) {
	for _, d := range Difficulties {
		got, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDifficulty("extreme")
	assert.Error(t, err)

	m, err := ParseMode("hell")
	require.NoError(t, err)
	assert.Equal(t, Hell, m)
	_, err = ParseMode("heaven")
	assert.Error(t, err)
}
