package gateway

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"studio/internal/domain"
	"studio/internal/prompt"
)

// Config carries the model names and pacing knobs for upstream calls.
type Config struct {
	ImageModel string
	TextModel  string
	VideoModel string

	// Upstream request pacing across all concurrent variants.
	RequestsPerSecond float64
	Burst             int

	// Video polling budget.
	PollInterval    time.Duration
	MaxPollAttempts int
}

func (c Config) withDefaults() Config {
	if c.ImageModel == "" {
		c.ImageModel = "gemini-2.5-flash-image"
	}
	if c.TextModel == "" {
		c.TextModel = "gemini-2.5-flash"
	}
	if c.VideoModel == "" {
		c.VideoModel = "veo-3.1-fast-generate-001"
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = 5
	}
	if c.Burst <= 0 {
		c.Burst = 3
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 10 * time.Second
	}
	if c.MaxPollAttempts <= 0 {
		c.MaxPollAttempts = 60
	}
	return c
}

// Gateway turns prompt descriptors into upstream calls and normalizes the
// responses into domain results.
type Gateway struct {
	client  ModelClient
	cfg     Config
	limiter *rate.Limiter
	log     zerolog.Logger
}

// New builds a Gateway around the given client.
func New(client ModelClient, cfg Config, log zerolog.Logger) *Gateway {
	cfg = cfg.withDefaults()
	return &Gateway{
		client:  client,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		log:     log,
	}
}

// buildContents assembles the single user turn: instruction text first,
// then every image as inline data in the descriptor's order.
func buildContents(desc prompt.Descriptor) ([]*genai.Content, error) {
	parts := []*genai.Part{genai.NewPartFromText(desc.Instruction)}
	for _, img := range desc.Images {
		data, err := img.Bytes()
		if err != nil {
			return nil, err
		}
		parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: img.MimeType, Data: data}})
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil
}

// GenerateVariants issues the descriptor's variant count of identical
// requests in parallel and merges the responses. Variant responses are
// collected in issue order regardless of completion order. Individual
// variant failures are tolerated as long as at least one variant yields an
// image; a response with no images at all maps to domain.ErrNoImages.
func (g *Gateway) GenerateVariants(ctx context.Context, desc prompt.Descriptor) (*domain.GenerationResult, error) {
	contents, err := buildContents(desc)
	if err != nil {
		return nil, err
	}

	n := desc.VariantCount
	if n < 1 {
		n = 1
	}
	config := &genai.GenerateContentConfig{ResponseModalities: desc.Modalities}

	responses := make([]*genai.GenerateContentResponse, n)
	errs := make([]error, n)

	eg, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			if err := g.limiter.Wait(gctx); err != nil {
				errs[i] = err
				return nil
			}
			resp, err := g.client.GenerateContent(gctx, g.cfg.ImageModel, contents, config)
			if err != nil {
				g.log.Warn().Err(err).Int("variant", i).Msg("variant generation failed")
				errs[i] = err
				return nil
			}
			responses[i] = resp
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := collectResult(responses)
	if len(result.ImageURLs) == 0 {
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
		return nil, domain.ErrNoImages
	}
	return result, nil
}

// GenerateSingle is GenerateVariants pinned to one request, used by the
// deterministic single-output operations.
func (g *Gateway) GenerateSingle(ctx context.Context, desc prompt.Descriptor) (*domain.GenerationResult, error) {
	desc.VariantCount = 1
	return g.GenerateVariants(ctx, desc)
}
