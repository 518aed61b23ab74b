// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/TheACJ/SkillBridge-sub000/internal/matching"
	"github.com/TheACJ/SkillBridge-sub000/internal/metrics"
	"github.com/TheACJ/SkillBridge-sub000/internal/validation"
)

// Match handles POST /match.
//
// @Summary Rank mentors for a learner
// @Tags Matching
// @Accept json
// @Produce json
// @Param request body matching.MatchRequest true "Learner profile, candidate pool and optional limit"
// @Success 200 {object} matching.MatchResponse
// @Failure 400 {object} ErrorResponse "Malformed body or invalid learner"
// @Failure 413 {object} ErrorResponse "Request body too large"
// @Failure 499 {object} ErrorResponse "Client closed the request"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Failure 503 {object} ErrorResponse "Matching timed out"
// @Router /match [post]
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)

	// Read fully before decoding so an oversized body surfaces as
	// *http.MaxBytesError instead of a truncated-input syntax error.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		metrics.RecordMatchFailure(metrics.OutcomeInvalid)
		h.matchLog.Rejected(ctx, "body", err)

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge,
				"Request body too large", map[string]interface{}{"limit_bytes": tooLarge.Limit})
			return
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation,
			"Failed to read request body", map[string]interface{}{"field": "body"})
		return
	}

	var req matching.MatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		metrics.RecordMatchFailure(metrics.OutcomeInvalid)
		h.matchLog.Rejected(ctx, "body", err)
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation,
			"Malformed request body: "+sanitizeLogValue(err.Error()),
			map[string]interface{}{"field": "body"})
		return
	}

	resp, err := h.matcher.Match(ctx, &req)
	if err != nil {
		h.writeMatchError(w, r, len(req.Mentors), err)
		return
	}

	metrics.RecordMatch(len(req.Mentors), len(resp.Matches), resp.CandidatesExcluded,
		time.Duration(resp.ProcessingTimeMS*float64(time.Millisecond)))
	h.matchLog.Served(ctx, req.Learner.ID.String(), len(req.Mentors), len(resp.Matches),
		resp.CandidatesExcluded, resp.ProcessingTimeMS, "local")

	respondJSON(w, http.StatusOK, resp)
}

// writeMatchError maps engine errors to status codes: validation to 400,
// caller cancellation to 499, timeout to 503, everything else to 500.
func (h *Handler) writeMatchError(w http.ResponseWriter, r *http.Request, pool int, err error) {
	ctx := r.Context()

	var ve *matching.ValidationError
	switch {
	case errors.As(err, &ve):
		metrics.RecordMatchFailure(metrics.OutcomeInvalid)
		h.matchLog.Rejected(ctx, ve.Field, err)

		var rve *validation.RequestValidationError
		if errors.As(err, &rve) {
			apiErr := rve.ToAPIError()
			respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
			return
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, ve.Error(),
			map[string]interface{}{"field": ve.Field})

	case errors.Is(err, matching.ErrTimeout):
		metrics.RecordMatchFailure(metrics.OutcomeTimeout)
		h.matchLog.TimedOut(ctx, pool, err)
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeTimeout,
			"Matching did not complete within the time budget", nil)

	case errors.Is(err, context.Canceled):
		metrics.RecordMatchFailure(metrics.OutcomeCanceled)
		h.matchLog.Canceled(ctx, pool)
		respondError(w, r, StatusClientClosedRequest, ErrCodeCanceled,
			"Request canceled before matching finished", nil)

	default:
		metrics.RecordMatchFailure(metrics.OutcomeError)
		h.matchLog.Failed(ctx, err)
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
			"Failed to compute matches", nil)
	}
}
