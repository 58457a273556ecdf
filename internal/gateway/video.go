package gateway

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genai"

	"studio/internal/domain"
)

// VideoResult carries the outcome of a completed video generation.
type VideoResult struct {
	// URI is the upstream download link for the rendered clip. The Gemini
	// API requires the caller's API key appended as a query parameter to
	// fetch it.
	URI         string `json:"uri"`
	AspectRatio string `json:"aspect_ratio"`
}

// GenerateVideo animates the image with the given motion prompt and polls
// the long-running operation until it completes. The aspect ratio is
// derived from the source image: landscape renders 16:9, everything else
// 9:16. Polling is bounded by the configured interval and attempt budget;
// exhausting it maps to domain.ErrVideoTimeout, and a completed operation
// without a downloadable clip maps to domain.ErrNoVideo.
func (g *Gateway) GenerateVideo(ctx context.Context, motionPrompt string, image domain.ImageData) (*VideoResult, error) {
	if strings.TrimSpace(motionPrompt) == "" {
		return nil, domain.NewPrecondition("prompt", "a motion prompt is required")
	}
	data, err := image.Bytes()
	if err != nil {
		return nil, err
	}
	aspect, err := image.VideoAspectRatio()
	if err != nil {
		return nil, err
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	op, err := g.client.GenerateVideos(ctx, g.cfg.VideoModel, motionPrompt,
		&genai.Image{ImageBytes: data, MIMEType: image.MimeType},
		&genai.GenerateVideosConfig{
			NumberOfVideos: 1,
			Resolution:     "720p",
			AspectRatio:    aspect,
		})
	if err != nil {
		return nil, err
	}

	ticker := time.NewTicker(g.cfg.PollInterval)
	defer ticker.Stop()
	for attempt := 0; !op.Done; attempt++ {
		if attempt >= g.cfg.MaxPollAttempts {
			return nil, domain.ErrVideoTimeout
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
		op, err = g.client.PollVideosOperation(ctx, op)
		if err != nil {
			return nil, err
		}
	}

	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 ||
		op.Response.GeneratedVideos[0].Video == nil ||
		op.Response.GeneratedVideos[0].Video.URI == "" {
		return nil, domain.ErrNoVideo
	}
	return &VideoResult{
		URI:         op.Response.GeneratedVideos[0].Video.URI,
		AspectRatio: aspect,
	}, nil
}
