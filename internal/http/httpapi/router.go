package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"studio/internal/http/handlers"
	"studio/internal/middleware"
)

// NewRouter assembles the versioned API surface around the app container.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Log),
		middleware.CORS(app.Cfg.AllowedOrigins),
		middleware.I18N(app.Cfg.DefaultLocale, lookup),
		middleware.RateLimit(app.Cfg.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/product-studio/enhance", app.Enhance)

		r.Route("/background", func(r chi.Router) {
			r.Post("/remove", app.BackgroundRemove)
			r.Post("/replace", app.BackgroundReplace)
		})

		r.Post("/merge", app.Merge)
		r.Post("/tryon", app.TryOn)
		r.Post("/lifestyle", app.Lifestyle)
		r.Post("/poses", app.Poses)
		r.Post("/faceswap", app.FaceSwap)

		r.Route("/digital-imaging", func(r chi.Router) {
			r.Post("/", app.DigitalImaging)
			r.Post("/concepts", app.DigitalImagingConcepts)
			r.Post("/from-concept", app.DigitalImagingFromConcept)
		})

		r.Post("/sketch", app.SketchDesign)

		r.Route("/ads", func(r chi.Router) {
			r.Post("/image", app.AdImage)
			r.Post("/copy-suggestions", app.AdCopySuggestions)
		})

		r.Route("/carousel", func(r chi.Router) {
			r.Post("/", app.Carousel)
			r.Post("/slide-image", app.CarouselSlideImage)
		})

		r.Route("/editor", func(r chi.Router) {
			r.Post("/inpaint", app.Inpaint)
			r.Post("/outpaint", app.Outpaint)
			r.Post("/outpaint-canvas", app.OutpaintCanvas)
		})

		r.Route("/motion", func(r chi.Router) {
			r.Post("/prompts", app.MotionPrompts)
			r.Post("/suggest", app.MotionSuggest)
		})

		r.Post("/videos", app.VideoGenerate)

		r.Route("/results", func(r chi.Router) {
			r.Get("/{id}", app.ResultGet)
			r.Get("/{id}/zip", app.ResultZip)
		})
	})

	return r
}
