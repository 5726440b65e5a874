package entity

const (
	GridSize  = 3
	CellCount = GridSize * GridSize

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
	StatusDraw     = "draw"
)

// Move is a single mark placed on the board. Row and Column are 0-indexed.
type Move struct {
	Player string `json:"player"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
}

// Game holds the move ledger of one session and the progress pointer into it.
// Moves beyond Pointer stay in the ledger until a new move overwrites them.
type Game struct {
	ID      string `json:"id"`
	Moves   []Move `json:"moves"`
	Pointer int    `json:"pointer"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:    id,
		Moves: []Move{},
	}
}

// ActiveMoves returns the moves that are currently played, 1..Pointer.
func (that *Game) ActiveMoves() []Move {
	return that.Moves[:that.Pointer]
}

// Clone returns a deep copy, so callers may mutate the ledger freely.
func (that *Game) Clone() *Game {
	moves := make([]Move, len(that.Moves))
	copy(moves, that.Moves)

	return &Game{
		ID:      that.ID,
		Moves:   moves,
		Pointer: that.Pointer,
	}
}

// PlayerForMove returns the mark that plays the move at the given 0-based ledger index.
func PlayerForMove(index int) string {
	if index%2 == 0 {
		return PlayerX
	}
	return PlayerO
}
