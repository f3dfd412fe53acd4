package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/djotaku/lastfmeoystats/internal/stats"
)

func TestWriteRankedList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_annual_artists")
	list := stats.RankedList{
		{Name: "Dream Theater", PlayCount: 300},
		{Name: "Devin Townsend", PlayCount: 250},
		{Name: "King Gizzard & The Lizard Wizard", PlayCount: 180},
	}

	if err := WriteRankedList(list, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	expected := "1. Dream Theater (300)\n" +
		"2. Devin Townsend (250)\n" +
		"3. King Gizzard & The Lizard Wizard (180)\n"
	if string(data) != expected {
		t.Errorf("expected %q, got %q", expected, string(data))
	}
}

func TestWriteRankedList_LineFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list")
	list := make(stats.RankedList, 20)
	for i := range list {
		list[i] = stats.RankedItem{
			Name:      fmt.Sprintf("Artist %d", i+1),
			PlayCount: 2000 - i,
		}
	}

	if err := WriteRankedList(list, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	if !strings.HasSuffix(string(data), "\n") {
		t.Fatal("expected trailing newline")
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != len(list) {
		t.Fatalf("expected %d lines, got %d", len(list), len(lines))
	}

	lineFormat := regexp.MustCompile(`^(\d+)\. (.+) \((\d+)\)$`)
	for i, line := range lines {
		m := lineFormat.FindStringSubmatch(line)
		if m == nil {
			t.Fatalf("line %d does not match format: %q", i+1, line)
		}
		if m[1] != fmt.Sprintf("%d", i+1) {
			t.Errorf("line %d: expected rank %d, got %s", i+1, i+1, m[1])
		}
	}
}

func TestWriteRankedList_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")

	if err := WriteRankedList(nil, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty file, got %q", string(data))
	}
}

func TestWriteRankedList_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list")

	long := stats.RankedList{
		{Name: "Dream Theater", PlayCount: 300},
		{Name: "Devin Townsend", PlayCount: 250},
	}
	if err := WriteRankedList(long, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	short := stats.RankedList{{Name: "Opeth", PlayCount: 10}}
	if err := WriteRankedList(short, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(data) != "1. Opeth (10)\n" {
		t.Errorf("expected full overwrite, got %q", string(data))
	}
}

func TestWriteRankedList_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "list")

	err := WriteRankedList(stats.RankedList{{Name: "Opeth", PlayCount: 10}}, path)
	if err == nil {
		t.Fatal("expected error for unwritable path, got nil")
	}
}
