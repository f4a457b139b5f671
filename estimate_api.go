package main

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lg/daily-nutrition-go-api/internal/nutrition"
)

// getActivityLevels lists the activity selector options in display order.
// GET /api/activity-levels.
func (h *Handler) getActivityLevels(c *gin.Context) {
	c.JSON(http.StatusOK, nutrition.ActivityLevels)
}

// getEstimate computes an estimate without touching any session.
// GET /api/estimate?weight=70&activity=1.1 (both optional, default to the form defaults).
// Negative weights are clamped to 0 like the form does.
func (h *Handler) getEstimate(c *gin.Context) {
	weight, ok := queryNumber(c, "weight", nutrition.DefaultWeightKG)
	if !ok {
		apiError(c, http.StatusBadRequest, "weight must be a number")
		return
	}
	if weight > nutrition.MaxWeightKG {
		apiError(c, http.StatusBadRequest, "weight must be at most 1000")
		return
	}
	activity, ok := queryNumber(c, "activity", nutrition.DefaultActivity)
	if !ok {
		apiError(c, http.StatusBadRequest, "activity must be a number")
		return
	}
	// Reject unknown multipliers rather than silently computing with them.
	if !nutrition.IsActivityLevel(activity) {
		apiError(c, http.StatusBadRequest, "activity must be one of: 1.1, 1.25, 1.4, 1.6, 1.8")
		return
	}

	c.JSON(http.StatusOK, nutrition.Compute(math.Max(weight, 0), activity).Summary())
}

// getForm returns the caller's session form with its current estimate.
// GET /api/form. Without a live session it returns the defaults and starts
// nothing; the first PATCH creates the session.
func (h *Handler) getForm(c *gin.Context) {
	var summary nutrition.Summary
	h.viewForm(c, func(f *nutrition.Form) {
		summary = f.Estimate().Summary()
	})
	c.JSON(http.StatusOK, summary)
}

// patchForm applies the provided fields to the caller's session form.
// PATCH /api/form. Values go through the same rules as the HTML form: a value
// that can't be used is ignored and reported as applied=false.
func (h *Handler) patchForm(c *gin.Context) {
	var body patchFormRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Weight == nil && body.Activity == nil {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	resp := patchFormResponse{Applied: map[string]bool{}}
	h.withForm(c, func(f *nutrition.Form) {
		if body.Weight != nil {
			resp.Applied["weight"] = f.SetWeightText(*body.Weight)
		}
		if body.Activity != nil {
			resp.Applied["activity"] = f.SetActivityText(*body.Activity)
		}
		resp.Form = f.Estimate().Summary()
	})

	c.JSON(http.StatusOK, resp)
}

// queryNumber parses a finite float query param, returning fallback when the
// param is absent or blank.
func queryNumber(c *gin.Context, key string, fallback float64) (float64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
