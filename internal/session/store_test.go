package session

import (
	"errors"
	"testing"
	"time"
)

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(time.Minute)
	saved := s.Save(Result{Feature: "enhance", ImageURLs: []string{"data:image/png;base64,aW1n"}})
	if saved.ID == "" {
		t.Fatal("Save did not assign an id")
	}
	got, err := s.Get(saved.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Feature != "enhance" || len(got.ImageURLs) != 1 {
		t.Fatalf("got = %+v", got)
	}
}

func TestStoreExpiry(t *testing.T) {
	s := NewStore(10 * time.Millisecond)
	saved := s.Save(Result{Feature: "enhance"})
	time.Sleep(30 * time.Millisecond)
	if _, err := s.Get(saved.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreUnknownID(t *testing.T) {
	s := NewStore(time.Minute)
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
