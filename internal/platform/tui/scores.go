package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Score table layout
const (
	rankWidth   = 6
	playerWidth = 16
	scoreWidth  = 8
	dateWidth   = 18
)

var (
	scoresTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				MarginBottom(1)

	scoresBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	scoresFooterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// scoreRows converts score entries into ranked table rows.
func scoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		player := e.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			strconv.Itoa(e.Score),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// RenderScores renders the top scores as a static table followed by a
// summary line. stats may be nil.
func RenderScores(entries []storage.ScoreEntry, stats *storage.GameStats) string {
	var b strings.Builder

	b.WriteString(scoresTitleStyle.Render("HIGH SCORES - Snake"))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString("No scores recorded yet.\n")
		b.WriteString(scoresFooterStyle.Render("Play 'snake play --db <path>' to set the first high score!"))
		b.WriteString("\n")
		return b.String()
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: rankWidth},
			{Title: "Player", Width: playerWidth},
			{Title: "Score", Width: scoreWidth},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithRows(scoreRows(entries)),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selected in a static table.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	// Header row plus its border.
	t.SetHeight(len(entries) + 2)

	b.WriteString(scoresBoxStyle.Render(t.View()))
	b.WriteString("\n")

	if stats != nil && stats.GamesCount > 0 {
		b.WriteString(scoresFooterStyle.Render(fmt.Sprintf(
			"Best: %d  Games: %d  Average: %.1f  Last played: %s",
			stats.HighScore, stats.GamesCount, stats.AvgScore,
			stats.LastPlayed.Format("2006-01-02 15:04"),
		)))
		b.WriteString("\n")
	}

	return b.String()
}
