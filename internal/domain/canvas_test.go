package domain

import "testing"

func TestOutpaintCanvasSize(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		aspect  string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{name: "square to landscape", width: 1000, height: 1000, aspect: "16:9", wantW: 1778, wantH: 1000},
		{name: "square to portrait", width: 1000, height: 1000, aspect: "9:16", wantW: 1000, wantH: 1778},
		{name: "landscape to square", width: 1600, height: 900, aspect: "1:1", wantW: 1600, wantH: 1600},
		{name: "already matching", width: 1920, height: 1080, aspect: "16:9", wantW: 1920, wantH: 1080},
		{name: "odd dimensions round even", width: 333, height: 333, aspect: "4:3", wantW: 444, wantH: 334},
		{name: "bad aspect", width: 100, height: 100, aspect: "wide", wantErr: true},
		{name: "zero dimension", width: 0, height: 100, aspect: "1:1", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h, err := OutpaintCanvasSize(tc.width, tc.height, tc.aspect)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w != tc.wantW || h != tc.wantH {
				t.Fatalf("canvas = %dx%d, want %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}
