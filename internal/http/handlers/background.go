package handlers

import (
	"net/http"

	"studio/internal/domain"
	"studio/internal/prompt"
)

type backgroundRemoveRequest struct {
	Image domain.ImageData `json:"image"`
}

func (a *App) BackgroundRemove(w http.ResponseWriter, r *http.Request) {
	var req backgroundRemoveRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Image.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "image required")
		return
	}
	a.generate(w, r, "background_remove", prompt.RemoveBackground(req.Image))
}

type backgroundReplaceRequest struct {
	Image domain.ImageData `json:"image"`
	Scene string           `json:"scene"`
}

func (a *App) BackgroundReplace(w http.ResponseWriter, r *http.Request) {
	var req backgroundReplaceRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Image.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "image required")
		return
	}
	desc, err := prompt.ReplaceBackground(req.Image, req.Scene)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, "background_replace", desc)
}

type faceSwapRequest struct {
	Target domain.ImageData `json:"target"`
	Face   domain.ImageData `json:"face"`
}

func (a *App) FaceSwap(w http.ResponseWriter, r *http.Request) {
	var req faceSwapRequest
	if !a.decode(w, r, &req) {
		return
	}
	desc, err := prompt.FaceSwap(req.Target, req.Face)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, "face_swap", desc)
}
