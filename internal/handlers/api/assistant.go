package api

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"icolleague/internal/assistant"
	"icolleague/internal/models"
)

// LookupRecorder records assistant lookup outcomes.
type LookupRecorder interface {
	RecordAssistantLookup(keyword, outcome string)
}

// AssistantHandler answers FAQ questions.
type AssistantHandler struct {
	kb       *assistant.KnowledgeBase
	recorder LookupRecorder
	log      *zap.Logger
}

// NewAssistantHandler creates a new assistant API handler. recorder may be nil.
func NewAssistantHandler(kb *assistant.KnowledgeBase, recorder LookupRecorder, log *zap.Logger) *AssistantHandler {
	return &AssistantHandler{kb: kb, recorder: recorder, log: log}
}

// Ask returns the canned response for the posted question.
func (h *AssistantHandler) Ask(c fiber.Ctx) error {
	answer := h.kb.Lookup(c.FormValue("question"))

	outcome := models.OutcomeFallback
	if answer.Matched {
		outcome = models.OutcomeMatched
	}
	if h.recorder != nil {
		h.recorder.RecordAssistantLookup(answer.Keyword, outcome)
	}
	h.log.Debug("assistant answered", zap.String("keyword", answer.Keyword), zap.String("outcome", outcome))

	return c.JSON(models.AskResponse{Response: answer.Response})
}
