package skyrun

import "fmt"

// ScoreText is the score as shown on the HUD.
func (s *GameSession) ScoreText() string {
	return fmt.Sprintf("%04d", s.WholeScore())
}

// CoinText is the coin counter as shown on the HUD.
func (s *GameSession) CoinText() string {
	return fmt.Sprintf("%03d", s.Coins)
}

// HighScoreText is the best score as shown on the HUD.
func (s *GameSession) HighScoreText() string {
	best := s.HighScore
	if s.WholeScore() > best {
		best = s.WholeScore()
	}
	return fmt.Sprintf("%04d", best)
}
