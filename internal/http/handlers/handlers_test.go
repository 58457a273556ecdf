package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"studio/internal/domain"
	"studio/internal/gateway"
	"studio/internal/infra"
	"studio/internal/session"
)

type stubModel struct {
	generate func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	videos   func(ctx context.Context, model, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
	poll     func(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)
}

func (s *stubModel) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if s.generate != nil {
		return s.generate(ctx, model, contents, config)
	}
	return nil, errors.New("generate not implemented")
}

func (s *stubModel) GenerateVideos(ctx context.Context, model, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	if s.videos != nil {
		return s.videos(ctx, model, prompt, image, config)
	}
	return nil, errors.New("videos not implemented")
}

func (s *stubModel) PollVideosOperation(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	if s.poll != nil {
		return s.poll(ctx, op)
	}
	return nil, errors.New("poll not implemented")
}

func newTestApp(client gateway.ModelClient) *App {
	cfg := &infra.Config{
		VariantCount: 3,
		ResultTTL:    time.Minute,
	}
	gw := gateway.New(client, gateway.Config{
		RequestsPerSecond: 1000,
		Burst:             100,
		PollInterval:      time.Millisecond,
		MaxPollAttempts:   2,
	}, zerolog.Nop())
	return NewApp(gw, session.NewStore(cfg.ResultTTL), cfg, zerolog.Nop())
}

func imageStub() *stubModel {
	return &stubModel{
		generate: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{
						Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("img")}}},
					},
				}},
			}, nil
		},
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func testImage() domain.ImageData {
	return domain.ImageData{DataURL: "data:image/png;base64,aW1n", MimeType: "image/png"}
}

// encodedPNG builds a real PNG so dimension probing works.
func encodedPNG(t *testing.T, w, h int) domain.ImageData {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return domain.ImageFromBytes(buf.Bytes(), "image/png")
}

func TestEnhanceReturnsVariants(t *testing.T) {
	app := newTestApp(imageStub())
	rec := postJSON(t, app.Enhance, enhanceRequest{
		Product: testImage(),
		Method:  domain.MethodSmart,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp generationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("response missing result id")
	}
	if len(resp.ImageURLs) != 3 {
		t.Fatalf("len(ImageURLs) = %d, want 3", len(resp.ImageURLs))
	}
	if _, err := app.Store.Get(resp.ID); err != nil {
		t.Fatalf("result not stored: %v", err)
	}
}

func TestEnhancePreconditionMapsTo422(t *testing.T) {
	app := newTestApp(imageStub())
	rec := postJSON(t, app.Enhance, enhanceRequest{
		Product: testImage(),
		Method:  domain.MethodReference,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body = %s", rec.Code, rec.Body.String())
	}
	var envelope map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope["error"] != "precondition_failed" {
		t.Fatalf("error = %q, want precondition_failed", envelope["error"])
	}
}

func TestEnhanceNoImagesMapsTo502(t *testing.T) {
	app := newTestApp(&stubModel{
		generate: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{{Text: "blocked"}}},
				}},
			}, nil
		},
	})
	rec := postJSON(t, app.Enhance, enhanceRequest{Product: testImage(), Method: domain.MethodSmart})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502, body = %s", rec.Code, rec.Body.String())
	}
}

func TestEnhanceRejectsInvalidPayload(t *testing.T) {
	app := newTestApp(imageStub())
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	app.Enhance(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestVideoTimeoutMapsTo504(t *testing.T) {
	app := newTestApp(&stubModel{
		videos: func(ctx context.Context, model, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
			return &genai.GenerateVideosOperation{Done: false}, nil
		},
		poll: func(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
			return &genai.GenerateVideosOperation{Done: false}, nil
		},
	})
	rec := postJSON(t, app.VideoGenerate, videoRequest{Image: encodedPNG(t, 2, 4), Prompt: "slow zoom"})
	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504, body = %s", rec.Code, rec.Body.String())
	}
}

func TestOutpaintCanvas(t *testing.T) {
	app := newTestApp(imageStub())
	rec := postJSON(t, app.OutpaintCanvas, outpaintCanvasRequest{Width: 1000, Height: 1000, AspectRatio: "16:9"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp outpaintCanvasResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Width != 1778 || resp.Height != 1000 {
		t.Fatalf("canvas = %dx%d, want 1778x1000", resp.Width, resp.Height)
	}
}
