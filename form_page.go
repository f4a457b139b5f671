package main

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lg/daily-nutrition-go-api/internal/nutrition"
)

// getFormPage renders the nutrition form for the caller's session, or the
// defaults when there is none yet. GET /.
func (h *Handler) getFormPage(c *gin.Context) {
	var page formPage
	h.viewForm(c, func(f *nutrition.Form) {
		page = newFormPage(f)
	})
	c.HTML(http.StatusOK, "form.html", page)
}

// postFormPage applies the submitted weight and/or activity, then redirects
// back to the form. Values the form can't use are dropped without an error so
// the page keeps the last valid inputs. POST /.
func (h *Handler) postFormPage(c *gin.Context) {
	weight, hasWeight := c.GetPostForm("weight")
	activity, hasActivity := c.GetPostForm("activity")

	h.withForm(c, func(f *nutrition.Form) {
		if hasWeight && !f.SetWeightText(weight) {
			log.Printf("[postFormPage] ignored weight %q", weight)
		}
		if hasActivity && !f.SetActivityText(activity) {
			log.Printf("[postFormPage] ignored activity %q", activity)
		}
	})

	c.Redirect(http.StatusSeeOther, "/")
}

/* ─── Template data ──────────────────────────────────────────────────── */

// formPage is the data passed to templates/form.html.
type formPage struct {
	Weight  string
	Levels  []levelOption
	Results []string
	Tips    []string
}

// levelOption is one <option> of the activity selector.
type levelOption struct {
	Value    string
	Label    string
	Selected bool
}

func newFormPage(f *nutrition.Form) formPage {
	summary := f.Estimate().Summary()

	levels := make([]levelOption, len(nutrition.ActivityLevels))
	for i, l := range nutrition.ActivityLevels {
		levels[i] = levelOption{
			Value:    formatNumber(l.Value),
			Label:    l.Label,
			Selected: l.Value == f.Activity(),
		}
	}

	return formPage{
		Weight:  formatNumber(f.WeightKG()),
		Levels:  levels,
		Results: summary.ResultLines(),
		Tips:    summary.Tips,
	}
}

// formatNumber prints the shortest decimal that round-trips, e.g. 70 or 1.25.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
