package main

import "lg/daily-nutrition-go-api/internal/nutrition"

/* ─── Request structs ────────────────────────────────────────────────── */

// patchFormRequest is the request body for PATCH /api/form. Values are the raw
// text a user typed or selected; nil fields are left alone.
type patchFormRequest struct {
	Weight   *string `json:"weight"`
	Activity *string `json:"activity"`
}

/* ─── Response structs ───────────────────────────────────────────────── */

// patchFormResponse is the form after a PATCH, plus which of the sent fields
// were accepted. A rejected field kept its previous value.
type patchFormResponse struct {
	Form    nutrition.Summary `json:"form"`
	Applied map[string]bool   `json:"applied"`
}
