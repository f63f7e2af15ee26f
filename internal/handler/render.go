package handler

import (
	"strings"

	"wordguess/internal/domain"
	"wordguess/internal/service"
)

// renderRows draws the guess history as rows of colored squares with the
// guessed word next to them
func renderRows(rows []service.GuessRow) string {
	var b strings.Builder
	for _, row := range rows {
		for _, v := range row.Verdicts {
			b.WriteString(verdictSquare(v))
		}
		b.WriteString("  ")
		b.WriteString(row.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func verdictSquare(v domain.Verdict) string {
	switch v {
	case domain.VerdictExact:
		return "🟩"
	case domain.VerdictPresent:
		return "🟨"
	default:
		return "⬜"
	}
}

// roundSummary renders a finished round: the board plus the outcome line
func roundSummary(turn *service.TurnResult) string {
	if turn.Outcome == service.OutcomeSolved {
		return renderRows(turn.Rows) + "\n🎉 Правильно! Слово угадано!"
	}
	return renderRows(turn.Rows) + "\n❌ Попытки кончились. Слово было: " + turn.Target
}
