package topiclist

// Colour tokens are Tailwind palette names from config.TailwindPalette.
// Background tokens carry a shade.
const (
	unknownTitle = "Unknown"
	unknownColor = "gray"

	// MaxImportance is the number of stars an importance rating is drawn out of.
	MaxImportance = 3
)

var topicDifficultyTitles = map[int]string{
	0: "Beginner",
	1: "Easy",
	2: "Medium",
	3: "Hard",
	4: "Very Hard",
}

var topicDifficultyColors = map[int]string{
	0: "green",
	1: "blue",
	2: "yellow",
	3: "red",
	4: "purple",
}

var topicDifficultyBgColors = map[int]string{
	0: "green-400",
	1: "blue-400",
	2: "yellow-400",
	3: "red-400",
	4: "purple-400",
}

var problemDifficultyTitles = map[int]string{
	1: "Easy",
	2: "Medium",
	3: "Hard",
	4: "Very Hard",
}

var problemDifficultyColors = map[int]string{
	1: "green",
	2: "yellow",
	3: "red",
	4: "purple",
}

func lookup(m map[int]string, code int, fallback string) string {
	if v, ok := m[code]; ok {
		return v
	}
	return fallback
}

// TopicDifficultyTitle returns the badge label for a topic difficulty code (0-4).
func TopicDifficultyTitle(code int) string {
	return lookup(topicDifficultyTitles, code, unknownTitle)
}

// TopicDifficultyColor returns the badge colour token for a topic difficulty code.
func TopicDifficultyColor(code int) string {
	return lookup(topicDifficultyColors, code, unknownColor)
}

// TopicDifficultyBgColor returns the colour token of the bar drawn next to the badge.
func TopicDifficultyBgColor(code int) string {
	return lookup(topicDifficultyBgColors, code, unknownColor+"-400")
}

// ProblemDifficultyTitle returns the badge label for a problem difficulty code (1-4).
// Problem difficulty is relative to the topic the problem belongs to.
func ProblemDifficultyTitle(code int) string {
	return lookup(problemDifficultyTitles, code, unknownTitle)
}

// ProblemDifficultyColor returns the badge colour token for a problem difficulty code.
func ProblemDifficultyColor(code int) string {
	return lookup(problemDifficultyColors, code, unknownColor)
}

// ImportanceStars returns how many of the MaxImportance stars are filled for
// an importance code. Codes outside 1-3 are clamped.
func ImportanceStars(code int) (filled, total int) {
	filled = code
	if filled < 0 {
		filled = 0
	}
	if filled > MaxImportance {
		filled = MaxImportance
	}
	return filled, MaxImportance
}

// TopicDifficulties returns the topic difficulty codes in display order.
func TopicDifficulties() []int {
	return []int{0, 1, 2, 3, 4}
}

// TopicImportances returns the importance codes in display order, most important first.
func TopicImportances() []int {
	codes := make([]int, MaxImportance)
	for i := range codes {
		codes[i] = MaxImportance - i
	}
	return codes
}

// ProblemDifficulties returns the problem difficulty codes in display order.
func ProblemDifficulties() []int {
	return []int{1, 2, 3, 4}
}
