package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/asrlabs/advisor/backend/internal/model/chat"
	chatService "github.com/asrlabs/advisor/backend/internal/service/chat"
	"github.com/asrlabs/advisor/backend/pkg/utils"
)

// ReplyGenerator produces the assistant reply for a transcript. Satisfied
// by ai.Service; tests substitute a stub.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, transcript []chat.Message) (string, error)
}

// Handler serves the chat turn and history endpoints.
type Handler struct {
	chatSvc   *chatService.Service
	generator ReplyGenerator
}

// New creates the chat handler.
func New(chatSvc *chatService.Service, generator ReplyGenerator) *Handler {
	return &Handler{
		chatSvc:   chatSvc,
		generator: generator,
	}
}

// RegisterRoutes mounts the chat endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/chat_history/{chatID}", h.handleHistory)
}

type chatRequest struct {
	Message string `json:"message"`
	ChatID  string `json:"chat_id"`
}

type chatResponse struct {
	ChatID   string `json:"chat_id"`
	Response string `json:"response"`
}

// handleChat processes one conversational turn: resolve or create the
// session, record the user message, ask the model, record its reply.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "Missing 'message' in request")
		return
	}

	session, transcript, created := h.chatSvc.StartTurn(r.Context(), payload.ChatID, payload.Message)
	if created {
		log.Printf("[chat] new session %s", session.ID)
	}

	reply, err := h.generator.GenerateReply(r.Context(), transcript)
	if err != nil {
		// The user message stays in the transcript; there is no rollback on
		// upstream failure.
		log.Printf("[chat] upstream failure for session %s: %v", session.ID, err)
		utils.RespondError(w, http.StatusInternalServerError, "LLM error: "+err.Error())
		return
	}

	if _, err := h.chatSvc.Append(r.Context(), session.ID, chat.RoleAssistant, reply); err != nil {
		// Unreachable unless the store contract is broken.
		log.Printf("[chat] failed to record assistant reply for session %s: %v", session.ID, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to record reply")
		return
	}

	utils.RespondJSON(w, http.StatusOK, chatResponse{
		ChatID:   session.ID,
		Response: reply,
	})
}

type historyEntry struct {
	Role    chat.Role `json:"role"`
	Content string    `json:"content"`
}

type historyResponse struct {
	ChatID  string         `json:"chat_id"`
	History []historyEntry `json:"history"`
}

// handleHistory returns the stored transcript in insertion order, including
// the injected system preamble.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	messages, err := h.chatSvc.History(r.Context(), chatID)
	if err != nil {
		if errors.Is(err, chatService.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Chat ID not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Error retrieving history: "+err.Error())
		return
	}

	history := make([]historyEntry, 0, len(messages))
	for _, msg := range messages {
		history = append(history, historyEntry{Role: msg.Role, Content: msg.Content})
	}

	utils.RespondJSON(w, http.StatusOK, historyResponse{
		ChatID:  chatID,
		History: history,
	})
}
