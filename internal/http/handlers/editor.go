package handlers

import (
	"net/http"

	"studio/internal/domain"
	"studio/internal/prompt"
)

type inpaintRequest struct {
	Image       domain.ImageData `json:"image"`
	Instruction string           `json:"instruction"`
}

func (a *App) Inpaint(w http.ResponseWriter, r *http.Request) {
	var req inpaintRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Image.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "image required")
		return
	}
	desc, err := prompt.Inpaint(req.Image, req.Instruction)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, "inpaint", desc)
}

type outpaintRequest struct {
	Image domain.ImageData `json:"image"`
}

func (a *App) Outpaint(w http.ResponseWriter, r *http.Request) {
	var req outpaintRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Image.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "image required")
		return
	}
	a.generate(w, r, "outpaint", prompt.Outpaint(req.Image))
}

type outpaintCanvasRequest struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	AspectRatio string `json:"aspect_ratio"`
}

type outpaintCanvasResponse struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// OutpaintCanvas computes the canvas the client should center the original
// on before requesting an outpaint.
func (a *App) OutpaintCanvas(w http.ResponseWriter, r *http.Request) {
	var req outpaintCanvasRequest
	if !a.decode(w, r, &req) {
		return
	}
	width, height, err := domain.OutpaintCanvasSize(req.Width, req.Height, req.AspectRatio)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	a.json(w, http.StatusOK, outpaintCanvasResponse{Width: width, Height: height})
}
