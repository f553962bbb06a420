package session

// HighscoreResult is the outcome of offering a score for the high score.
type HighscoreResult struct {
	Highscore int
	Increased bool // Strictly higher than before; ties do not count
}

// UpdateHighscore returns max(current, score) and whether it went up.
func UpdateHighscore(current, score int) HighscoreResult {
	if score > current {
		return HighscoreResult{Highscore: score, Increased: true}
	}
	return HighscoreResult{Highscore: current}
}
