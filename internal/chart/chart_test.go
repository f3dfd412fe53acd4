package chart

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/djotaku/lastfmeoystats/internal/stats"
)

func TestRenderer_Render(t *testing.T) {
	list := stats.RankedList{
		{Name: "Dream Theater", PlayCount: 300},
		{Name: "Devin Townsend", PlayCount: 250},
		{Name: "King Gizzard & The Lizard Wizard", PlayCount: 180},
	}

	var buf bytes.Buffer
	err := New().Render(&buf, list, Params{
		Title:  "Top Artists of 2026",
		XLabel: "Artists",
		YLabel: "Listens",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, format, err := jpeg.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("failed to decode image: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected jpeg format, got %s", format)
	}
	if cfg.Width != 2000 || cfg.Height != 2000 {
		t.Errorf("expected 2000x2000 image, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRenderer_Render_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := New().Render(&buf, nil, Params{
		Title:  "Top Albums Overall",
		XLabel: "Albums",
		YLabel: "Listens",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := jpeg.DecodeConfig(&buf); err != nil {
		t.Fatalf("failed to decode image: %v", err)
	}
}

func TestRenderer_Render_ManyBars(t *testing.T) {
	list := make(stats.RankedList, 100)
	for i := range list {
		list[i] = stats.RankedItem{
			Name:      fmt.Sprintf("Artist %d", i+1),
			PlayCount: 1000 - i,
		}
	}

	var buf bytes.Buffer
	err := New().Render(&buf, list, Params{
		Title:  "Top Artists Overall",
		XLabel: "Artists",
		YLabel: "Listens",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := jpeg.DecodeConfig(&buf); err != nil {
		t.Fatalf("failed to decode image: %v", err)
	}
}

func TestRenderer_RenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_annual_artist.jpg")
	list := stats.RankedList{{Name: "Dream Theater", PlayCount: 300}}

	err := New().RenderFile(path, list, Params{
		Title:  "Top Artists of 2026",
		XLabel: "Artists",
		YLabel: "Listens",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat chart file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty chart file")
	}
}

func TestRenderer_RenderFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chart.jpg")

	err := New().RenderFile(path, nil, Params{Title: "Top Tracks Overall"})
	if err == nil {
		t.Fatal("expected error for unwritable path, got nil")
	}
}
