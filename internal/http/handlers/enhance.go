package handlers

import (
	"net/http"

	"studio/internal/domain"
	"studio/internal/prompt"
)

type enhanceRequest struct {
	Product   domain.ImageData     `json:"product"`
	Method    domain.Method        `json:"method"`
	Options   domain.Customization `json:"options"`
	Reference *domain.ImageData    `json:"reference,omitempty"`
}

func (a *App) Enhance(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Product.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "product image required")
		return
	}
	desc, err := prompt.Enhance(req.Product, req.Method, req.Options, req.Reference)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, "enhance", desc)
}
