package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/djotaku/lastfmeoystats/internal/stats"
)

// WriteRankedList writes the list to path as a numbered text list, one line
// per entry in the form "1. Name (count)". The file is created if needed and
// truncated if it already exists. An empty list produces an empty file. The
// format is meant for pasting straight into a blog post.
func WriteRankedList(list stats.RankedList, path string) error {
	var b strings.Builder
	for i, item := range list {
		fmt.Fprintf(&b, "%d. %s (%d)\n", i+1, item.Name, item.PlayCount)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write ranked list: %w", err)
	}
	return nil
}
