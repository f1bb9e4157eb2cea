package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hyperifyio/wordbubble/internal/fetch"
)

func testApp(t *testing.T) *App {
	t.Helper()
	return New(context.Background(), Config{FetchTimeout: 2 * time.Second})
}

func TestAnalyze_EndToEnd(t *testing.T) {
	page := `<!doctype html>
	<html lang="en">
	  <head>
	    <title>Counting Page</title>
	    <meta name="description" content="A page about counting words.">
	    <script>var ignored = "test test test";</script>
	  </head>
	  <body>
	    <p>hello world world test test test</p>
	  </body>
	</html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	report, err := testApp(t).Analyze(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Title != "Counting Page" {
		t.Fatalf("expected title, got %q", report.Title)
	}
	if report.Description != "A page about counting words." {
		t.Fatalf("expected description, got %q", report.Description)
	}

	// Script content must not inflate counts: test appears 3 times, not 6.
	// The title text also counts, so only the top two ranks are fixed.
	if len(report.Words) < 3 {
		t.Fatalf("expected at least 3 words, got %v", report.Words)
	}
	if report.Words[0].Word != "test" || report.Words[0].Count != 3 {
		t.Fatalf("expected test x3 first, got %+v", report.Words[0])
	}
	if report.Words[1].Word != "world" || report.Words[1].Count != 2 {
		t.Fatalf("expected world x2 second, got %+v", report.Words[1])
	}
	found := false
	for _, wc := range report.Words {
		if wc.Word == "hello" && wc.Count == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected hello x1 somewhere, got %v", report.Words)
	}

	if len(report.Bubbles) != len(report.Words) {
		t.Fatalf("expected one bubble per word, got %d for %d", len(report.Bubbles), len(report.Words))
	}
	for i := 1; i < 3; i++ {
		if report.Bubbles[i].R > report.Bubbles[i-1].R {
			t.Fatalf("bubble radii must follow rank: %v then %v", report.Bubbles[i-1], report.Bubbles[i])
		}
	}
}

func TestAnalyze_EmptyPageYieldsEmptyReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body></body></html>"))
	}))
	defer srv.Close()

	report, err := testApp(t).Analyze(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("empty page is not an error: %v", err)
	}
	if len(report.Words) != 0 || len(report.Bubbles) != 0 {
		t.Fatalf("expected empty words and bubbles, got %v / %v", report.Words, report.Bubbles)
	}
}

func TestAnalyze_NonHTMLHaltsBeforeExtraction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	_, err := testApp(t).Analyze(context.Background(), srv.URL)
	var cte *fetch.ContentTypeError
	if !errors.As(err, &cte) {
		t.Fatalf("expected ContentTypeError, got %v", err)
	}
}

func TestNew_StopwordFileDegradesWithWarning(t *testing.T) {
	a := New(context.Background(), Config{StopwordsFile: "no/such/list.txt"})
	if a.StopwordWarning == "" {
		t.Fatalf("expected a stopword warning")
	}

	// The pipeline still runs, filtered by the embedded list.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>the cat and the hat</body></html>"))
	}))
	defer srv.Close()

	report, err := a.Analyze(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("degraded pipeline must not fail: %v", err)
	}
	if len(report.Warnings) == 0 {
		t.Fatalf("expected warning on the report")
	}
	for _, w := range report.Words {
		if w.Word == "the" || w.Word == "and" {
			t.Fatalf("embedded stopword list not applied: %v", report.Words)
		}
	}
}

func TestNew_CustomStopwordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("cat\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := New(context.Background(), Config{StopwordsFile: path})
	if a.StopwordWarning != "" {
		t.Fatalf("unexpected warning: %q", a.StopwordWarning)
	}
	got := a.Counter.Rank("the cat sat")
	for _, w := range got {
		if w.Word == "cat" {
			t.Fatalf("custom stopword leaked: %v", got)
		}
	}
	// Custom list replaces the embedded one entirely.
	found := false
	for _, w := range got {
		if w.Word == "the" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 'the' to survive with custom list, got %v", got)
	}
}
