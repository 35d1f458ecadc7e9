package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/season-radar/internal/agent"
	"github.com/jonathan/season-radar/internal/ranking"
	"github.com/jonathan/season-radar/internal/types"
)

// MetaResponse describes the catalog and model behind the API.
type MetaResponse struct {
	Cities      int      `json:"cities"`
	Regions     []string `json:"regions"`
	Tags        []string `json:"tags"`
	Model       string   `json:"model"`
	ChatEnabled bool     `json:"chat_enabled"`
}

// SearchResponse carries the ranked destinations for one month.
type SearchResponse struct {
	Month   string                  `json:"month"`
	Count   int                     `json:"count"`
	Results []types.ScoredCandidate `json:"results"`
}

// ChatRequest represents the request body for /api/chat
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

// ChatResponse represents the response for /api/chat
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// handleMeta returns catalog metadata so clients can build search forms.
func (s *Server) handleMeta(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, MetaResponse{
		Cities:      s.catalog.Len(),
		Regions:     s.catalog.Regions(),
		Tags:        s.catalog.TagVocabulary(),
		Model:       s.modelName,
		ChatEnabled: s.llmClient != nil,
	})
}

// handleSearch runs the ranking engine over the catalog. Unlike the model's
// tool boundary, this surface validates strictly and rejects bad input.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var prefs types.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := prefs.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid preferences: "+err.Error())
		return
	}

	results, err := ranking.RankCities(s.catalog.Cities, prefs)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SearchResponse{
		Month:   ranking.MonthName(prefs.TravelMonth),
		Count:   len(results),
		Results: results,
	})
}

// handleChat runs one conversational turn against the model.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.llmClient == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Chat is disabled: no API key configured")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		s.errorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	session := s.sessions.GetOrCreate(req.SessionID, func() *agent.Agent {
		return agent.New(s.llmClient, s.catalog)
	})

	reply, err := session.Run(r.Context(), req.Message)
	if err != nil {
		log.Printf("Chat turn failed (session %s): %v", session.ID, err)
		s.errorResponse(w, http.StatusBadGateway, "Model request failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ChatResponse{
		SessionID: session.ID,
		Reply:     reply,
	})
}
