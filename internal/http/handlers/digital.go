package handlers

import (
	"net/http"

	"studio/internal/domain"
	"studio/internal/prompt"
)

type digitalImagingRequest struct {
	Product domain.ImageData     `json:"product"`
	Options domain.Customization `json:"options"`
}

func (a *App) DigitalImaging(w http.ResponseWriter, r *http.Request) {
	var req digitalImagingRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Product.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "product image required")
		return
	}
	a.generate(w, r, "digital_imaging", prompt.DigitalImaging(req.Product, req.Options))
}

type digitalConceptsRequest struct {
	Product domain.ImageData `json:"product"`
}

func (a *App) DigitalImagingConcepts(w http.ResponseWriter, r *http.Request) {
	var req digitalConceptsRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Product.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "product image required")
		return
	}
	concepts, err := a.Gateway.GenerateTextList(r.Context(), prompt.DigitalImagingConcepts(req.Product))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string][]string{"concepts": concepts})
}

type digitalFromConceptRequest struct {
	Product domain.ImageData `json:"product"`
	Concept string           `json:"concept"`
}

func (a *App) DigitalImagingFromConcept(w http.ResponseWriter, r *http.Request) {
	var req digitalFromConceptRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Product.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "product image required")
		return
	}
	desc, err := prompt.DigitalImagingFromConcept(req.Product, req.Concept)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, "digital_imaging", desc)
}

type sketchRequest struct {
	Sketch    domain.ImageData     `json:"sketch"`
	Options   domain.SketchOptions `json:"options"`
	Reference *domain.ImageData    `json:"reference,omitempty"`
}

func (a *App) SketchDesign(w http.ResponseWriter, r *http.Request) {
	var req sketchRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Sketch.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "sketch image required")
		return
	}
	if !req.Options.Category.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown sketch category")
		return
	}
	desc, err := prompt.SketchDesign(req.Sketch, req.Options, req.Reference)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, "sketch_design", desc)
}
