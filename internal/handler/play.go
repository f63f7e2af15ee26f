package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wordguess/internal/domain"
	"wordguess/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handlePlay opens the day's play loop for the user
func (h *Handler) handlePlay(c tele.Context) error {
	userID := c.Sender().ID

	if c.Callback() != nil {
		c.Respond()
	}

	st, err := h.playService.BeginDay(userID, time.Now())
	if err != nil {
		h.logger.Error("Failed to begin play", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	if st.Outcome == service.PlayQuotaExhausted {
		return c.Send(
			fmt.Sprintf("Ты уже сыграл %d слова сегодня. Возвращайся завтра!", domain.MaxDailySessions),
			mainMenuMarkup(),
		)
	}

	h.SetState(userID, &domain.StateData{State: domain.StatePlaying})

	if st.Resumed {
		text := "▶️ Продолжаем прерванную игру!\n\n"
		if len(st.Rows) > 0 {
			text += "Твои прошлые попытки:\n" + renderRows(st.Rows) + "\n"
		}
		text += fmt.Sprintf("Попытка %d из %d:", st.Attempt, domain.MaxAttempts)
		return c.Send(text)
	}

	return c.Send(fmt.Sprintf(
		"🎮 Угадай слово из %d букв! На слово даётся %d попыток, в день — %d слова.\n"+
			"Отправь OK, чтобы поставить игру на паузу.\n\nПопытка 1 из %d:",
		domain.WordLength, domain.MaxAttempts, domain.MaxDailySessions, domain.MaxAttempts,
	))
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Ensure user exists
	if err := h.authService.EnsureUserExists(userID, c.Sender().Username); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	// If not authorized, check password
	if !authorized {
		if h.authService.CheckPassword(text) {
			if err := h.authService.AuthorizeUser(userID); err != nil {
				h.logger.Error("Failed to authorize user", zap.Error(err))
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			h.logger.Info("User authorized", zap.Int64("user_id", userID))
			h.ResetState(userID)
			return c.Send(
				"✅ Доступ разрешён!\n\n🏠 Главное меню\n\nВыберите действие:",
				mainMenuMarkup(),
			)
		}

		// Wrong password
		return c.Send("Непральна")
	}

	// User is authorized, handle based on state
	state := h.GetState(userID)
	if state.State == domain.StatePlaying {
		return h.handleGuess(c, userID, text)
	}

	return c.Send("🏠 Главное меню\n\nВыберите действие:", mainMenuMarkup())
}

// handleGuess feeds one guess into the play loop and renders the result
func (h *Handler) handleGuess(c tele.Context, userID int64, text string) error {
	st, err := h.playService.Submit(userID, time.Now(), text)
	if errors.Is(err, domain.ErrInvalidInput) {
		// Malformed guess: same attempt stays open
		return c.Send(fmt.Sprintf(
			"Нужно слово ровно из %d букв (или OK, чтобы остановиться). Попробуй ещё раз:",
			domain.WordLength,
		))
	}
	if errors.Is(err, domain.ErrInvalidState) {
		h.ResetState(userID)
		return c.Send("🏠 Главное меню\n\nВыберите действие:", mainMenuMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to submit guess", zap.Error(err), zap.Int64("user_id", userID))
		h.ResetState(userID)
		return c.Send("Произошла ошибка. Попробуйте позже.", mainMenuMarkup())
	}

	switch st.Outcome {
	case service.PlayPaused:
		h.ResetState(userID)
		return c.Send(
			"⏸ Игра на паузе. Возвращайся — продолжим с того же места.",
			mainMenuMarkup(),
		)

	case service.PlayRoundOver:
		return c.Send(roundSummary(st.Turn) + fmt.Sprintf(
			"\n\nСледующее слово! Попытка 1 из %d:", domain.MaxAttempts,
		))

	case service.PlayDayOver:
		h.ResetState(userID)
		return c.Send(
			roundSummary(st.Turn)+"\n\nИгры на сегодня закончились. Возвращайся завтра!",
			mainMenuMarkup(),
		)

	default: // PlayContinue
		return c.Send(renderRows(st.Rows) + fmt.Sprintf(
			"\nПопытка %d из %d:", st.Attempt, domain.MaxAttempts,
		))
	}
}

// handleWords shows the word catalog the answers are drawn from
func (h *Handler) handleWords(c tele.Context) error {
	userID := c.Sender().ID

	words, err := h.playService.Words()
	if err != nil {
		h.logger.Error("Failed to load words", zap.Error(err), zap.Int64("user_id", userID))
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке данных"})
		}
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	texts := make([]string, 0, len(words))
	for _, w := range words {
		texts = append(texts, w.Text)
	}

	text := fmt.Sprintf("📃 Загаданное слово — одно из этих %d:\n\n%s",
		len(texts), strings.Join(texts, " "))

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnPlay), markup.Row(btnMainMenu))

	// Edit message if callback, send new if command
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil // Message was already modified, just acknowledged
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}
