package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wall2048/internal/board"
	"github.com/vovakirdan/wall2048/internal/game"
	"github.com/vovakirdan/wall2048/internal/render"
)

const previewCellWidth = 7

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#edc22e"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	alertStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	frameStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(render.Hex(render.OutlineColor)))
)

// cellStyle colours a preview cell with the same palette as the wallpaper.
func cellStyle(value int) lipgloss.Style {
	s := lipgloss.NewStyle().Width(previewCellWidth).Align(lipgloss.Center)
	if value == 0 {
		return s.Background(lipgloss.Color(render.Hex(render.BackgroundColor)))
	}
	return s.
		Bold(true).
		Background(lipgloss.Color(render.Hex(render.TileColor(value)))).
		Foreground(lipgloss.Color(render.Hex(render.TextColor(value))))
}

// RenderBoard draws the board as a coloured grid.
func RenderBoard(b board.Board) string {
	rows := make([]string, 0, board.Size)
	for y := range board.Size {
		cells := make([]string, 0, board.Size)
		for x := range board.Size {
			v := b[y][x]
			text := ""
			if v != 0 {
				text = strconv.Itoa(v)
			}
			cells = append(cells, cellStyle(v).Render(text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// statusLine describes the game state under the board.
func statusLine(snap game.Snapshot) string {
	switch snap.Status {
	case game.StatusWon:
		return winStyle.Render(fmt.Sprintf("%s  Reached %d!", render.WinCaption, snap.Target))
	case game.StatusOver:
		return alertStyle.Render(render.GameOverCaption + " - press r to restart")
	}
	return statusStyle.Render("Board is on your desktop background")
}

// View renders the terminal preview.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.sess.Game().Snapshot()

	var sb strings.Builder
	header := fmt.Sprintf("2048  Score: %d  Max: %d", snap.Score, snap.MaxTile)
	if snap.HackMode {
		header += "  [hack]"
	}
	sb.WriteString(titleStyle.Render(header))
	sb.WriteString("\n")
	sb.WriteString(RenderBoard(snap.Board))
	sb.WriteString("\n")
	sb.WriteString(statusLine(snap))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(m.err.Error()))
	}
	return sb.String()
}
