package report

import (
	"bytes"
	"testing"

	"github.com/hyperifyio/wordbubble/internal/analyze"
	"github.com/hyperifyio/wordbubble/internal/app"
)

func TestWritePDF(t *testing.T) {
	rep := &app.Report{
		URL:         "https://example.com",
		Title:       "Example Domain",
		Description: "An example page.",
		Words: []analyze.WordCount{
			{Word: "test", Count: 3},
			{Word: "world", Count: 2},
			{Word: "hello", Count: 1},
		},
		Warnings: []string{"stopword list degraded"},
	}

	var buf bytes.Buffer
	if err := WritePDF(&buf, rep); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF magic, got %q", buf.Bytes()[:8])
	}
	if buf.Len() < 500 {
		t.Fatalf("suspiciously small PDF: %d bytes", buf.Len())
	}
}

func TestWritePDF_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, &app.Report{URL: "https://example.com"}); err != nil {
		t.Fatalf("empty report must still render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF magic")
	}
}
