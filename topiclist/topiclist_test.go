package topiclist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cp-topic-list/site/config"
)

func TestTopicDifficulty(t *testing.T) {
	tests := []struct {
		code    int
		title   string
		color   string
		bgColor string
	}{
		{0, "Beginner", "green", "green-400"},
		{1, "Easy", "blue", "blue-400"},
		{2, "Medium", "yellow", "yellow-400"},
		{3, "Hard", "red", "red-400"},
		{4, "Very Hard", "purple", "purple-400"},
		{5, "Unknown", "gray", "gray-400"},
		{-1, "Unknown", "gray", "gray-400"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.title, TopicDifficultyTitle(tt.code))
			assert.Equal(t, tt.color, TopicDifficultyColor(tt.code))
			assert.Equal(t, tt.bgColor, TopicDifficultyBgColor(tt.code))
		})
	}
}

func TestProblemDifficulty(t *testing.T) {
	tests := []struct {
		code  int
		title string
		color string
	}{
		{0, "Unknown", "gray"},
		{1, "Easy", "green"},
		{2, "Medium", "yellow"},
		{3, "Hard", "red"},
		{4, "Very Hard", "purple"},
		{5, "Unknown", "gray"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.title, ProblemDifficultyTitle(tt.code), "code %d", tt.code)
		assert.Equal(t, tt.color, ProblemDifficultyColor(tt.code), "code %d", tt.code)
	}
}

func TestImportanceStars(t *testing.T) {
	tests := []struct {
		name   string
		code   int
		filled int
	}{
		{"rare", 1, 1},
		{"occasional", 2, 2},
		{"frequent", 3, 3},
		{"below range", -2, 0},
		{"above range", 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, total := ImportanceStars(tt.code)
			assert.Equal(t, tt.filled, filled)
			assert.Equal(t, MaxImportance, total)
		})
	}
}

func TestDisplayOrder(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, TopicDifficulties())
	assert.Equal(t, []int{3, 2, 1}, TopicImportances())
	assert.Equal(t, []int{1, 2, 3, 4}, ProblemDifficulties())
}

func TestEveryDisplayedCodeIsMapped(t *testing.T) {
	for _, code := range TopicDifficulties() {
		assert.NotEqual(t, unknownTitle, TopicDifficultyTitle(code))
	}
	for _, code := range ProblemDifficulties() {
		assert.NotEqual(t, unknownTitle, ProblemDifficultyTitle(code))
	}
}

func TestColorsExistInStylesheet(t *testing.T) {
	assertBgToken := func(t *testing.T, token string) {
		t.Helper()
		i := strings.LastIndex(token, "-")
		require.Positive(t, i, "background token %q has no shade", token)
		assert.Contains(t, config.TailwindPalette, token[:i], "background token %q", token)
		assert.Contains(t, config.TailwindShades, token[i+1:], "background token %q", token)
	}

	for _, code := range TopicDifficulties() {
		assert.Contains(t, config.TailwindPalette, TopicDifficultyColor(code), "topic difficulty %d", code)
		assertBgToken(t, TopicDifficultyBgColor(code))
	}
	for _, code := range ProblemDifficulties() {
		assert.Contains(t, config.TailwindPalette, ProblemDifficultyColor(code), "problem difficulty %d", code)
	}

	// out-of-range codes fall back to a colour that is also built
	assert.Contains(t, config.TailwindPalette, TopicDifficultyColor(-1))
	assertBgToken(t, TopicDifficultyBgColor(-1))
	assert.Contains(t, config.TailwindPalette, ProblemDifficultyColor(0))
}
