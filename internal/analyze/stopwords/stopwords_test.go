package stopwords

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDefault_ContainsCommonWords(t *testing.T) {
	s := Default()
	for _, w := range []string{"the", "and", "is", "of", "to"} {
		if !s.Contains(w) {
			t.Fatalf("expected default set to contain %q", w)
		}
	}
	if s.Contains("mountain") {
		t.Fatalf("did not expect 'mountain' in the default set")
	}
}

func TestParse_SkipsCommentsAndBlanks(t *testing.T) {
	s, err := Parse(strings.NewReader("# comment\n\nThe\n  and  \n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 words, got %d", s.Len())
	}
	if !s.Contains("the") || !s.Contains("and") {
		t.Fatalf("expected lowercased entries, got %v", s)
	}
}

func TestFromFile_Missing(t *testing.T) {
	if _, err := FromFile("does/not/exist.txt"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("foo\nbar\n"))
	}))
	defer srv.Close()

	s, err := FromURL(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Contains("foo") || !s.Contains("bar") {
		t.Fatalf("expected fetched words, got %v", s)
	}
}

func TestFromURL_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := FromURL(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Fatalf("expected error for 404")
	}
}
