package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"typemood/internal/models"
	"typemood/internal/service"
	"typemood/internal/validation"
)

const defaultSessionsLimit = 10

// APIHandler handles the JSON API endpoints
type APIHandler struct {
	analysisService  *service.AnalysisService
	statsService     *service.StatsService
	challengeService *service.ChallengeService
	exportService    *service.ExportService
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(analysisService *service.AnalysisService, statsService *service.StatsService, challengeService *service.ChallengeService, exportService *service.ExportService) *APIHandler {
	return &APIHandler{
		analysisService:  analysisService,
		statsService:     statsService,
		challengeService: challengeService,
		exportService:    exportService,
	}
}

// Analyze runs the mood analysis over a submitted typing session
func (h *APIHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	visitorID := GetVisitorFromContext(r.Context())
	if visitorID == "" {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "", nil)
		return
	}

	var input models.SessionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Invalid request body", "Error decoding analyze request", err)
		return
	}

	if err := validation.ValidateSessionInput(input); err != nil {
		respondJSONError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	result, err := h.analysisService.AnalyzeSession(visitorID, input)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Failed to analyze session", "Error analyzing session", err)
		return
	}

	respondJSON(w, http.StatusOK, analysisResponse{
		Success:   true,
		SessionID: result.Session.PublicID,
		Analysis: analysisView{
			Metrics:      result.Metrics,
			Scores:       result.Scores,
			DominantMood: result.Session.DominantMood,
		},
		MoodFeedback: result.Feedback,
	})
}

// Sessions returns the visitor's recent session history
func (h *APIHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	visitorID := GetVisitorFromContext(r.Context())

	limit := defaultSessionsLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 100 {
			respondJSONError(w, http.StatusBadRequest, "Invalid limit", "", nil)
			return
		}
		limit = parsed
	}

	sessions, err := h.analysisService.GetRecentSessions(visitorID, limit)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Failed to load sessions", "Error loading sessions", err)
		return
	}

	views := make([]sessionView, len(sessions))
	for i, session := range sessions {
		views[i] = newSessionView(session)
	}
	respondJSON(w, http.StatusOK, views)
}

// Stats returns the 30-day summary and the last week's mood trends
func (h *APIHandler) Stats(w http.ResponseWriter, r *http.Request) {
	visitorID := GetVisitorFromContext(r.Context())

	summary, err := h.statsService.Summary(visitorID)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Failed to load stats", "Error loading stats", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// Export streams the visitor's full history as a CSV download
func (h *APIHandler) Export(w http.ResponseWriter, r *http.Request) {
	visitorID := GetVisitorFromContext(r.Context())

	filename := service.ExportFilename(time.Now().UTC())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exportService.WriteCSV(w, visitorID); err != nil {
		// Headers are already sent, just log
		log.Printf("Error writing CSV export: %v", err)
	}
}

// Challenge returns a practice text with a target WPM adapted to the visitor
func (h *APIHandler) Challenge(w http.ResponseWriter, r *http.Request) {
	visitorID := GetVisitorFromContext(r.Context())

	challenge, err := h.challengeService.DailyChallenge(visitorID)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Failed to load challenge", "Error loading challenge", err)
		return
	}

	respondJSON(w, http.StatusOK, challenge)
}

// Health reports service liveness
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
