package handlers

import (
	"net/http"
	"strconv"

	"sahayak-agent/catalog"
	"sahayak-agent/engine"
	apperrors "sahayak-agent/errors"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionEngines resolves a session ID to its conversation engine.
type SessionEngines interface {
	Get(sessionID uuid.UUID) *engine.Engine
}

type ChatHandler struct {
	sessions SessionEngines
	logger   *zap.Logger
}

type ChatRequest struct {
	Message  string `json:"message" form:"message" binding:"required"`
	Language string `json:"language" form:"language"`
}

type ChatResponse struct {
	Response     string   `json:"response"`
	ResponseHTML string   `json:"response_html"`
	Stage        string   `json:"stage"`
	Completed    int      `json:"completed_fields"`
	Missing      []string `json:"missing_fields"`
}

// SchemeCard is the localized recommendation card sent to the client.
type SchemeCard struct {
	Position    int    `json:"position"`
	Name        string `json:"name"`
	Benefit     string `json:"benefit"`
	Eligibility string `json:"eligibility"`
	Website     string `json:"website"`
	Helpline    string `json:"helpline"`
}

func NewChatHandler(sessions SessionEngines, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		sessions: sessions,
		logger:   logger,
	}
}

func (h *ChatHandler) sessionEngine(c *gin.Context) *engine.Engine {
	sessionID := c.MustGet("sessionID").(uuid.UUID)
	return h.sessions.Get(sessionID)
}

// Welcome returns the opening assistant message for a new conversation.
func (h *ChatHandler) Welcome(c *gin.Context) {
	lang := engine.ParseLanguage(c.Query("language"))
	text := engine.WelcomeMessage(lang)
	c.JSON(http.StatusOK, gin.H{
		"response":      text,
		"response_html": renderHTML(text),
	})
}

// SendMessage processes one conversational turn.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Error("Failed to bind chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	eng := h.sessionEngine(c)
	lang := engine.ParseLanguage(req.Language)
	response := eng.Process(req.Message, lang)

	missing := eng.MissingFields()
	missingNames := make([]string, len(missing))
	for i, f := range missing {
		missingNames[i] = string(f)
	}

	c.JSON(http.StatusOK, ChatResponse{
		Response:     response,
		ResponseHTML: renderHTML(response),
		Stage:        string(eng.Stage()),
		Completed:    eng.CompletedFields(),
		Missing:      missingNames,
	})
}

// Recommendations lists the ranked schemes as localized cards.
func (h *ChatHandler) Recommendations(c *gin.Context) {
	eng := h.sessionEngine(c)
	if eng.Stage() != engine.StageRecommending {
		c.JSON(http.StatusOK, gin.H{"ready": false, "schemes": []SchemeCard{}})
		return
	}

	lang := engine.ParseLanguage(c.Query("language"))
	ranked := eng.Ranked()
	cards := make([]SchemeCard, 0, len(ranked))
	for i, p := range ranked {
		cards = append(cards, localizedCard(i+1, p, lang))
	}

	c.JSON(http.StatusOK, gin.H{"ready": true, "schemes": cards})
}

// SchemeDetails formats one ranked scheme by 1-based position.
func (h *ChatHandler) SchemeDetails(c *gin.Context) {
	pos, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidSelection.Error()})
		return
	}

	eng := h.sessionEngine(c)
	lang := engine.ParseLanguage(c.Query("language"))
	text := eng.ShowDetails(pos, lang)

	c.JSON(http.StatusOK, gin.H{
		"response":      text,
		"response_html": renderHTML(text),
	})
}

// ProfileStatus reports gathering progress for the client's progress bar.
func (h *ChatHandler) ProfileStatus(c *gin.Context) {
	eng := h.sessionEngine(c)

	missing := eng.MissingFields()
	missingNames := make([]string, len(missing))
	for i, f := range missing {
		missingNames[i] = string(f)
	}

	c.JSON(http.StatusOK, gin.H{
		"stage":            string(eng.Stage()),
		"completed_fields": eng.CompletedFields(),
		"missing_fields":   missingNames,
	})
}

func localizedCard(position int, p catalog.Program, lang engine.Language) SchemeCard {
	card := SchemeCard{
		Position: position,
		Website:  p.Website,
		Helpline: p.Helpline,
	}
	if lang == engine.LanguageHindi {
		card.Name = p.NameHindi
		card.Benefit = p.BenefitSummaryHindi
		card.Eligibility = p.EligibilitySummaryHindi
	} else {
		card.Name = p.NameEnglish
		card.Benefit = p.BenefitSummaryEnglish
		card.Eligibility = p.EligibilitySummaryEnglish
	}
	return card
}

func renderHTML(md string) string {
	return string(markdown.ToHTML([]byte(md), nil, nil))
}
