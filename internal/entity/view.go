package entity

// View is everything a renderer needs to draw a game at one point of its history.
type View struct {
	ID         string                     `json:"id"`
	Board      [GridSize][GridSize]string `json:"board"`
	NextPlayer string                     `json:"next_player"`
	Winner     string                     `json:"winner"`
	Status     string                     `json:"status"`
	Message    string                     `json:"message"`
	Pointer    int                        `json:"pointer"`
	Total      int                        `json:"total"`
	Replaying  bool                       `json:"replaying"`
	History    []HistoryEntry             `json:"history"`
}

// HistoryEntry is one jump target. Entry 0 is the game start and carries no move.
type HistoryEntry struct {
	Number  int    `json:"number"`
	Label   string `json:"label"`
	Move    *Move  `json:"move,omitempty"`
	Current bool   `json:"current"`
}

func (that *View) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *View) IsDraw() bool {
	return that.Status == StatusDraw
}

// CountMarks returns how many cells of the board are occupied.
func (that *View) CountMarks() int {
	count := 0
	for _, row := range that.Board {
		for _, cell := range row {
			if cell != EmptyCell {
				count++
			}
		}
	}
	return count
}
