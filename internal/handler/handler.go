package handler

import (
	"sync"

	"wordguess/internal/domain"
	"wordguess/internal/middleware"
	"wordguess/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot           *tele.Bot
	authService   *service.AuthService
	playService   *service.PlayService
	reportService *service.ReportService
	adminID       int64
	logger        *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	playService *service.PlayService,
	reportService *service.ReportService,
	adminID int64,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		authService:   authService,
		playService:   playService,
		reportService: reportService,
		adminID:       adminID,
		logger:        logger,
		states:        make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	auth := middleware.Auth(h.authService, h.logger)
	admin := middleware.AdminOnly(h.adminID, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/play", h.handlePlay, auth)
	h.bot.Handle("/report", h.handleDailyReport, admin)
	h.bot.Handle("/games", h.handleUserReport, admin)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnPlay, h.handlePlay, auth)
	h.bot.Handle(&btnWords, h.handleWords, auth)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnPlay = tele.Btn{
		Unique: "play",
		Text:   "🎮 Играть",
	}
	btnWords = tele.Btn{
		Unique: "words",
		Text:   "📃 Список слов",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Главное меню",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnPlay),
		menu.Row(btnWords),
	)
	return menu
}
