package renderer

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-replay/internal/entity"
)

const emptyMark = "·"

type styles struct {
	title   lipgloss.Style
	board   lipgloss.Style
	cell    lipgloss.Style
	markX   lipgloss.Style
	markO   lipgloss.Style
	status  lipgloss.Style
	winner  lipgloss.Style
	draw    lipgloss.Style
	replay  lipgloss.Style
	current lipgloss.Style
	entry   lipgloss.Style
	help    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1),
		board: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1),
		cell:    r.NewStyle().Width(3).Align(lipgloss.Center),
		markX:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F25D94")),
		markO:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		status:  r.NewStyle().Bold(true),
		winner:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700")),
		draw:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#999999")),
		replay:  r.NewStyle().Italic(true).Foreground(lipgloss.Color("#999999")),
		current: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		entry:   r.NewStyle().Foreground(lipgloss.Color("#999999")),
		help:    r.NewStyle().Foreground(lipgloss.Color("#626262")).MarginTop(1),
	}
}

// Terminal draws the whole view on every publish. It never keeps game state of its own.
type Terminal struct {
	output *termenv.Output
	styles styles

	mu sync.Mutex
}

func NewTerminal(w io.Writer, opts ...termenv.OutputOption) *Terminal {
	output := termenv.NewOutput(w, opts...)
	r := lipgloss.NewRenderer(output, opts...)

	return &Terminal{
		output: output,
		styles: newStyles(r),
	}
}

// Publish - clears the screen and redraws the view.
func (that *Terminal) Publish(view *entity.View) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.output.ClearScreen()
	fmt.Fprintln(that.output, that.Render(view))
}

// Notice - prints a one line message under the current drawing.
func (that *Terminal) Notice(msg string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	fmt.Fprintln(that.output, that.styles.replay.Render(msg))
}

func (that *Terminal) Render(view *entity.View) string {
	header := that.styles.title.Render("Tic-tac-toe")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top,
			that.renderBoard(view),
			"  ",
			that.renderHistory(view),
		),
		that.renderStatus(view),
		that.styles.help.Render("row column · jump <n> · reset · quit"),
	)
}

func (that *Terminal) renderBoard(view *entity.View) string {
	rows := make([]string, 0, entity.GridSize*2-1)
	for i, row := range view.Board {
		cells := make([]string, 0, entity.GridSize)
		for _, mark := range row {
			cells = append(cells, that.styles.cell.Render(that.renderMark(mark)))
		}

		rows = append(rows, strings.Join(cells, "│"))
		if i < entity.GridSize-1 {
			rows = append(rows, strings.Repeat("─", 3*entity.GridSize+entity.GridSize-1))
		}
	}

	return that.styles.board.Render(strings.Join(rows, "\n"))
}

func (that *Terminal) renderMark(mark string) string {
	switch mark {
	case entity.PlayerX:
		return that.styles.markX.Render(mark)
	case entity.PlayerO:
		return that.styles.markO.Render(mark)
	default:
		return emptyMark
	}
}

func (that *Terminal) renderHistory(view *entity.View) string {
	lines := make([]string, 0, len(view.History))
	for _, entry := range view.History {
		line := fmt.Sprintf("%d. %s", entry.Number, entry.Label)
		if entry.Move != nil {
			line += fmt.Sprintf(" (%s %d,%d)", entry.Move.Player, entry.Move.Row, entry.Move.Column)
		}

		if entry.Current {
			lines = append(lines, that.styles.current.Render("> "+line))
			continue
		}

		lines = append(lines, that.styles.entry.Render("  "+line))
	}

	return strings.Join(lines, "\n")
}

func (that *Terminal) renderStatus(view *entity.View) string {
	var status string
	switch {
	case view.IsFinished():
		status = that.styles.winner.Render(view.Message)
	case view.IsDraw():
		status = that.styles.draw.Render(view.Message)
	default:
		status = that.styles.status.Render(view.Message)
	}

	if view.Replaying {
		status += " " + that.styles.replay.Render(fmt.Sprintf("(viewing move %d of %d)", view.Pointer, view.Total))
	}

	return status
}
