package tressette

// ScoreToWin is the match score a team must reach to win.
const ScoreToWin = 31

// MatchScore tallies settled game points across hands, indexed by team.
type MatchScore [2]int

// AddHand folds a completed hand's final scores into the tally.
func (m *MatchScore) AddHand(final [2]Score) {
	for t, s := range final {
		m[t] += s.GamePoints()
	}
}

// IsMatchOver reports whether a team has won the match: at least
// ScoreToWin points and strictly ahead of the other team.
func (m MatchScore) IsMatchOver() bool {
	return (m[0] >= ScoreToWin && m[0] > m[1]) ||
		(m[1] >= ScoreToWin && m[1] > m[0])
}
