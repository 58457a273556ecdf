package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"studio/internal/domain"
	"studio/internal/middleware"
	"studio/internal/prompt"
	"studio/internal/session"
)

type carouselRequest struct {
	Products   []domain.ImageData     `json:"products"`
	Options    domain.CarouselOptions `json:"options"`
	SlideCount int                    `json:"slide_count"`
	Logo       *domain.ImageData      `json:"logo,omitempty"`
}

type carouselResponse struct {
	ID              string                 `json:"id"`
	Slides          []domain.CarouselSlide `json:"slides"`
	CarouselCaption string                 `json:"carousel_caption"`
}

// Carousel plans the slide deck, then renders every slide image in
// parallel. Slide renders land in plan order regardless of completion
// order; a single failed slide render fails the whole request so the deck
// never ships with holes.
func (a *App) Carousel(w http.ResponseWriter, r *http.Request) {
	var req carouselRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Options.Language == "" {
		req.Options.Language = middleware.LanguageName(middleware.LocaleFromContext(r.Context()))
	}

	planDesc, err := prompt.CarouselPlan(req.Products, req.Options, req.SlideCount)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	plan, err := a.Gateway.GenerateCarouselPlan(r.Context(), planDesc, req.SlideCount)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	urls := make([]string, len(plan.Slides))
	eg, ctx := errgroup.WithContext(r.Context())
	for i := range plan.Slides {
		eg.Go(func() error {
			desc, err := prompt.CarouselSlideImage(req.Products, req.Options, plan.Slides[i], req.Logo)
			if err != nil {
				return err
			}
			result, err := a.Gateway.GenerateSingle(ctx, desc)
			if err != nil {
				return err
			}
			urls[i] = result.ImageURLs[0]
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		a.fail(w, r, err)
		return
	}
	for i := range plan.Slides {
		plan.Slides[i].GeneratedImageURL = urls[i]
	}

	stored := a.Store.Save(session.Result{
		Feature:   "carousel",
		ImageURLs: urls,
		Slides:    plan.Slides,
		Caption:   plan.CarouselCaption,
	})
	a.json(w, http.StatusOK, carouselResponse{ID: stored.ID, Slides: plan.Slides, CarouselCaption: plan.CarouselCaption})
}

type carouselSlideRequest struct {
	Products []domain.ImageData     `json:"products"`
	Options  domain.CarouselOptions `json:"options"`
	Slide    domain.CarouselSlide   `json:"slide"`
	Logo     *domain.ImageData      `json:"logo,omitempty"`
}

// CarouselSlideImage re-renders a single slide with the same instruction
// path the batch generation uses.
func (a *App) CarouselSlideImage(w http.ResponseWriter, r *http.Request) {
	var req carouselSlideRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Options.Language == "" {
		req.Options.Language = middleware.LanguageName(middleware.LocaleFromContext(r.Context()))
	}
	desc, err := prompt.CarouselSlideImage(req.Products, req.Options, req.Slide, req.Logo)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, "carousel_slide", desc)
}
