package entities

// Player tracks one participant's name and score for a single game.
type Player struct {
	Name  string
	Score int
}

// NewPlayer creates a player with a zero score.
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// IncreaseScore awards one point. Scores only grow during a game.
func (p *Player) IncreaseScore() {
	p.Score++
}
