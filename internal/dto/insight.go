package dto

import (
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"

	"github.com/google/uuid"
)

// GenerateInsightsRequest is the body of the on-demand generation endpoint
type GenerateInsightsRequest struct {
	ForceRegenerate bool `json:"force_regenerate"`
}

// GenerateInsightsResponse is returned after a successful on-demand run
type GenerateInsightsResponse struct {
	Success   bool   `json:"success"`
	Count     int    `json:"count"`
	Message   string `json:"message"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// GenerateThrottledResponse is the 429 body when the per-user limiter
// rejects an on-demand run. This is a soft outcome, not a system error.
type GenerateThrottledResponse struct {
	Success           bool   `json:"success"`
	Error             string `json:"error"`
	Message           string `json:"message"`
	RetryAfterSeconds int64  `json:"retry_after_seconds"`
}

// InsightResponse is the wire representation of a single insight
type InsightResponse struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Priority    int             `json:"priority"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Metadata    models.JSONBMap `json:"metadata,omitempty"`
	Dismissed   bool            `json:"dismissed"`
	DismissedAt *time.Time      `json:"dismissed_at,omitempty"`
	ViewCount   int             `json:"view_count"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ListInsightsResponse wraps the ordered insight list for a user
type ListInsightsResponse struct {
	Insights []InsightResponse `json:"insights"`
	Count    int               `json:"count"`
}

// NewInsightResponse converts a model to its wire representation
func NewInsightResponse(insight *models.Insight) InsightResponse {
	return InsightResponse{
		ID:          insight.ID,
		Type:        insight.Type,
		Priority:    insight.Priority,
		Title:       insight.Title,
		Description: insight.Description,
		Metadata:    insight.Metadata,
		Dismissed:   insight.Dismissed,
		DismissedAt: insight.DismissedAt,
		ViewCount:   insight.ViewCount,
		CreatedAt:   insight.CreatedAt,
	}
}

// NewListInsightsResponse converts a model slice, preserving order
func NewListInsightsResponse(insights []models.Insight) ListInsightsResponse {
	responses := make([]InsightResponse, 0, len(insights))
	for i := range insights {
		responses = append(responses, NewInsightResponse(&insights[i]))
	}
	return ListInsightsResponse{
		Insights: responses,
		Count:    len(responses),
	}
}
