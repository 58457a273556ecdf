package handlers

import (
	"net/http"

	"studio/internal/domain"
	"studio/internal/middleware"
	"studio/internal/prompt"
)

type adImageRequest struct {
	Product   domain.ImageData  `json:"product"`
	Copy      domain.AdCopy     `json:"copy"`
	Reference *domain.ImageData `json:"reference,omitempty"`
}

func (a *App) AdImage(w http.ResponseWriter, r *http.Request) {
	var req adImageRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Product.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "product image required")
		return
	}
	desc, err := prompt.AdImage(req.Product, req.Copy, req.Reference)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, "ad_image", desc)
}

type adCopyRequest struct {
	ProductName string `json:"product_name"`
	Keywords    string `json:"keywords"`
	Language    string `json:"language"`
}

func (a *App) AdCopySuggestions(w http.ResponseWriter, r *http.Request) {
	var req adCopyRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.ProductName == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "product_name required")
		return
	}
	language := req.Language
	if language == "" {
		language = middleware.LanguageName(middleware.LocaleFromContext(r.Context()))
	}
	desc := prompt.AdCopySuggestions(req.ProductName, req.Keywords, language)
	out, err := a.Gateway.GenerateAdCopySuggestions(r.Context(), desc)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, out)
}
