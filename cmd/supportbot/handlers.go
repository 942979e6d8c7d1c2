package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/prushal/supportbot/internal/corpus"
	"github.com/prushal/supportbot/internal/dispatch"
	"github.com/prushal/supportbot/internal/sentiment"
)

// defaultSessionID keeps single-user clients working without session
// management; anything multi-user must send its own session_id.
const defaultSessionID = "local"

// Service holds the initialized components behind the HTTP handlers.
type Service struct {
	corpus     *corpus.Corpus
	dispatcher *dispatch.Dispatcher
	started    time.Time
}

// RespondRequest is the request body for POST /respond.
type RespondRequest struct {
	SessionID string `json:"session_id,omitempty"` // defaults to "local"
	Prompt    string `json:"prompt"`               // user utterance (required)
}

// RespondResponse is the response for POST /respond.
type RespondResponse struct {
	Text      string `json:"text"`
	Category  string `json:"category"`
	Sentiment string `json:"sentiment"`
}

func (s *Service) handleRespond(w http.ResponseWriter, r *http.Request) {
	var req RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "prompt is required"})
		return
	}
	if req.SessionID == "" {
		req.SessionID = defaultSessionID
	}

	res, err := s.dispatcher.Respond(req.SessionID, req.Prompt)
	if err != nil {
		// Empty prompts are caught above; anything else is unexpected.
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, RespondResponse{
		Text:      res.Text,
		Category:  string(res.Category),
		Sentiment: string(sentiment.Score(req.Prompt)),
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]any{
		"status":          "ok",
		"faq_entries":     s.corpus.Len(),
		"keywords":        len(s.corpus.Vocabulary()),
		"active_sessions": s.dispatcher.Sessions().Count(),
		"uptime_seconds":  int(time.Since(s.started).Seconds()),
	}

	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mem, err := p.MemoryInfo(); err == nil {
			health["rss_bytes"] = mem.RSS
		}
		if cpu, err := p.CPUPercent(); err == nil {
			health["cpu_percent"] = cpu
		}
	}

	writeJSON(w, http.StatusOK, health)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
