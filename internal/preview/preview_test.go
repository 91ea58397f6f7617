package preview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch_OpenGraphWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<!DOCTYPE html>
<html><head>
<title>Plain Title</title>
<meta name="description" content="plain description">
<meta property="og:title" content="OG Title">
<meta property="og:description" content="OG description">
<meta property="og:image" content="https://cdn.example.com/cover.png">
</head><body></body></html>`))
	}))
	defer srv.Close()

	p := NewFetcher().Fetch(context.Background(), srv.URL)

	if p.Title != "OG Title" {
		t.Errorf("Title = %q, want %q", p.Title, "OG Title")
	}
	if p.Description != "OG description" {
		t.Errorf("Description = %q, want %q", p.Description, "OG description")
	}
	if p.Image != "https://cdn.example.com/cover.png" {
		t.Errorf("Image = %q, want absolute og:image", p.Image)
	}
	if p.Favicon != srv.URL+"/favicon.ico" {
		t.Errorf("Favicon = %q, want %q", p.Favicon, srv.URL+"/favicon.ico")
	}
}

func TestFetch_FallsBackToPlainTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
<title>  Plain Title  </title>
<meta name="description" content="plain description">
</head></html>`))
	}))
	defer srv.Close()

	p := NewFetcher().Fetch(context.Background(), srv.URL)

	if p.Title != "Plain Title" {
		t.Errorf("Title = %q, want trimmed %q", p.Title, "Plain Title")
	}
	if p.Description != "plain description" {
		t.Errorf("Description = %q, want %q", p.Description, "plain description")
	}
}

func TestFetch_RelativeImageResolved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
<meta property="og:image" content="/img/cover.png">
</head></html>`))
	}))
	defer srv.Close()

	p := NewFetcher().Fetch(context.Background(), srv.URL)

	if p.Image != srv.URL+"/img/cover.png" {
		t.Errorf("Image = %q, want %q", p.Image, srv.URL+"/img/cover.png")
	}
}

func TestFetch_UnreachableHostDegradesToEmpty(t *testing.T) {
	// A port that nothing listens on. The fetch must not error; only the
	// favicon, derived from the URL alone, is populated.
	p := NewFetcher().Fetch(context.Background(), "http://127.0.0.1:1/page")

	if p == nil {
		t.Fatal("expected a non-nil preview")
	}
	if p.Title != "" || p.Description != "" || p.Image != "" {
		t.Errorf("preview = %+v, want empty metadata", p)
	}
	if p.Favicon != "http://127.0.0.1:1/favicon.ico" {
		t.Errorf("Favicon = %q, want derived favicon", p.Favicon)
	}
}
