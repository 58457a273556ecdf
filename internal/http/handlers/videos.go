package handlers

import (
	"net/http"

	"studio/internal/domain"
	"studio/internal/prompt"
)

type motionPromptsRequest struct {
	Image    domain.ImageData `json:"image"`
	Keywords string           `json:"keywords"`
}

func (a *App) MotionPrompts(w http.ResponseWriter, r *http.Request) {
	var req motionPromptsRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Image.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "image required")
		return
	}
	prompts, err := a.Gateway.GenerateTextList(r.Context(), prompt.MotionPrompts(req.Image, req.Keywords))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string][]string{"prompts": prompts})
}

type motionSuggestRequest struct {
	Image domain.ImageData `json:"image"`
}

func (a *App) MotionSuggest(w http.ResponseWriter, r *http.Request) {
	var req motionSuggestRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Image.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "image required")
		return
	}
	suggestion, err := a.Gateway.GenerateText(r.Context(), prompt.MotionSuggestion(req.Image))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"prompt": suggestion})
}

type videoRequest struct {
	Image  domain.ImageData `json:"image"`
	Prompt string           `json:"prompt"`
}

func (a *App) VideoGenerate(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Image.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "image required")
		return
	}
	res, err := a.Gateway.GenerateVideo(r.Context(), req.Prompt, req.Image)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}
