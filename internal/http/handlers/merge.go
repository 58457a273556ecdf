package handlers

import (
	"net/http"

	"studio/internal/domain"
	"studio/internal/prompt"
)

type mergeRequest struct {
	Products  []domain.ImageData   `json:"products"`
	Method    domain.Method        `json:"method"`
	Options   domain.Customization `json:"options"`
	Reference *domain.ImageData    `json:"reference,omitempty"`
}

func (a *App) Merge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if !a.decode(w, r, &req) {
		return
	}
	desc, err := prompt.MergeProducts(req.Products, req.Method, req.Options, req.Reference)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, "merge", desc)
}

type tryOnRequest struct {
	Products []domain.ImageData `json:"products"`
	Model    *domain.ImageData  `json:"model,omitempty"`
	Spec     *domain.ModelSpec  `json:"model_spec,omitempty"`
}

func (a *App) TryOn(w http.ResponseWriter, r *http.Request) {
	var req tryOnRequest
	if !a.decode(w, r, &req) {
		return
	}
	desc, err := prompt.VirtualTryOn(req.Products, req.Model, req.Spec)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, "tryon", desc)
}

type lifestyleRequest struct {
	Product     domain.ImageData  `json:"product"`
	Model       *domain.ImageData `json:"model,omitempty"`
	Spec        *domain.ModelSpec `json:"model_spec,omitempty"`
	Interaction string            `json:"interaction"`
}

func (a *App) Lifestyle(w http.ResponseWriter, r *http.Request) {
	var req lifestyleRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Product.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "product image required")
		return
	}
	desc, err := prompt.LifestylePhotoshoot(req.Product, req.Model, req.Spec, req.Interaction)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, "lifestyle", desc)
}

type posesRequest struct {
	Model   domain.ImageData   `json:"model"`
	Method  domain.Method      `json:"method"`
	Options domain.PoseOptions `json:"options"`
}

func (a *App) Poses(w http.ResponseWriter, r *http.Request) {
	var req posesRequest
	if !a.decode(w, r, &req) {
		return
	}
	desc, err := prompt.StudioPoses(req.Model, req.Method, req.Options)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, "poses", desc)
}
