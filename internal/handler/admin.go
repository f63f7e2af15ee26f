package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"wordguess/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleDailyReport shows per-user results for today
func (h *Handler) handleDailyReport(c tele.Context) error {
	results, err := h.reportService.DailyReport(time.Now())
	if err != nil {
		h.logger.Error("Failed to build daily report", zap.Error(err))
		return c.Send("Не удалось построить отчёт.")
	}

	if len(results) == 0 {
		return c.Send("Сегодня ещё никто не играл.")
	}

	var b strings.Builder
	b.WriteString("📊 Отчёт за " + domain.DateString(time.Now()) + ":\n\n")
	for _, r := range results {
		name := r.Username
		if name == "" {
			name = strconv.FormatInt(r.UserID, 10)
		}
		fmt.Fprintf(&b, "%s — угадано %d, не угадано %d\n", name, r.Solved, r.Failed)
	}
	fmt.Fprintf(&b, "\nВсего игроков сегодня: %d", len(results))

	return c.Send(b.String())
}

// handleUserReport shows a player's full game history with boards
func (h *Handler) handleUserReport(c tele.Context) error {
	payload := strings.TrimSpace(c.Message().Payload)
	userID, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return c.Send("Использование: /games <telegram id>")
	}

	reports, err := h.reportService.UserReport(userID)
	if err != nil {
		h.logger.Error("Failed to build user report", zap.Error(err), zap.Int64("target_id", userID))
		return c.Send("Не удалось построить отчёт.")
	}

	if len(reports) == 0 {
		return c.Send("У этого игрока пока нет игр.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🗂 Игры пользователя %d:\n\n", userID)
	for _, rep := range reports {
		solved := "нет"
		if rep.Session.Solved {
			solved = "да"
		}
		fmt.Fprintf(&b, "Слово: %s | Статус: %s | Угадано: %s | Дата: %s\n",
			rep.Word, rep.Session.Status, solved, domain.DateString(rep.Session.StartedAt))
		if len(rep.Rows) > 0 {
			b.WriteString(renderRows(rep.Rows))
		}
		b.WriteString("\n")
	}

	return c.Send(b.String())
}
