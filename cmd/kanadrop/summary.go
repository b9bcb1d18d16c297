package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/charazer/kana-game-sub000/engine"
	"github.com/charazer/kana-game-sub000/session"
	"github.com/charazer/kana-game-sub000/store"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("5")).Padding(0, 2)
)

// printSummary reports the last run after the screen is released
func printSummary(w io.Writer, sess *session.Session, eng *engine.Engine) {
	rec, ok := sess.LastRecord()
	if !ok {
		rec = sess.Snapshot()
	}

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Width(12).Render(label), valueStyle.Render(value))
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("kanadrop"),
		"",
		row("player", rec.Player),
		row("mode", rec.Mode+" / "+rec.Set),
		row("score", strconv.Itoa(rec.Score)),
		row("correct", strconv.Itoa(rec.Correct)),
		row("best combo", strconv.Itoa(rec.MaxCombo)),
		row("misses", strconv.Itoa(sess.Misses())),
		row("time", formatDuration(rec.Duration)),
		row("speed", fmt.Sprintf("x%.2f", eng.SpeedMultiplier())),
	)
	fmt.Fprintln(w, boxStyle.Render(body))
}

// scoreTable renders records best first
func scoreTable(records []store.Record) string {
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Player,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Correct),
			strconv.Itoa(r.MaxCombo),
			r.Set,
			formatDuration(r.Duration),
			r.PlayedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderHeader(true).
		BorderRow(false).
		Headers("#", "Player", "Score", "Correct", "Combo", "Set", "Time", "Played").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
