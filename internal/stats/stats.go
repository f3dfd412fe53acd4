package stats

import (
	"context"
	"fmt"
)

// Category identifies which listening chart a query targets.
type Category string

const (
	CategoryArtists Category = "artists"
	CategoryAlbums  Category = "albums"
	CategoryTracks  Category = "tracks"
)

// Window identifies the time scope of a query.
type Window string

const (
	// WindowAnnual covers the trailing twelve months.
	WindowAnnual Window = "annual"

	// WindowOverall covers the entire account history.
	WindowOverall Window = "overall"
)

// RankedItem is one entry of a ranked listening chart.
type RankedItem struct {
	Name      string // Display name; albums and tracks are artist-qualified
	PlayCount int    // Scrobbles within the queried window
}

// RankedList is an ordered chart, descending by play count as returned by
// the statistics service.
type RankedList []RankedItem

// Source resolves users against the statistics service.
type Source interface {
	// ResolveUser validates the named account and returns a handle to it.
	ResolveUser(ctx context.Context, name string) (User, error)
}

// User is a handle to a resolved account's listening charts.
type User interface {
	// Name returns the canonical username.
	Name() string

	// PlayCount returns the account's total scrobble count.
	PlayCount() int64

	// Top returns the user's chart for a category and window, bounded by
	// limit and ordered by descending play count.
	Top(ctx context.Context, category Category, window Window, limit int) (RankedList, error)
}

// Per-query limits. The annual charts are uniform; the all-time charts keep
// the wider artist list the reports have always used.
const (
	annualLimit        = 20
	overallArtistLimit = 100
	overallAlbumLimit  = 15
	overallTrackLimit  = 15
)

// FetchAnnual returns the user's top artists, albums, and tracks for the
// trailing twelve months, limited to 20 entries each. The triple order
// (artists, albums, tracks) is fixed.
func FetchAnnual(ctx context.Context, user User) (artists, albums, tracks RankedList, err error) {
	artists, err = user.Top(ctx, CategoryArtists, WindowAnnual, annualLimit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch annual artists: %w", err)
	}

	albums, err = user.Top(ctx, CategoryAlbums, WindowAnnual, annualLimit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch annual albums: %w", err)
	}

	tracks, err = user.Top(ctx, CategoryTracks, WindowAnnual, annualLimit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch annual tracks: %w", err)
	}

	return artists, albums, tracks, nil
}

// FetchOverall returns the user's all-time top artists, albums, and tracks,
// limited to 100, 15, and 15 entries respectively. The triple order
// (artists, albums, tracks) is fixed.
func FetchOverall(ctx context.Context, user User) (artists, albums, tracks RankedList, err error) {
	artists, err = user.Top(ctx, CategoryArtists, WindowOverall, overallArtistLimit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch overall artists: %w", err)
	}

	albums, err = user.Top(ctx, CategoryAlbums, WindowOverall, overallAlbumLimit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch overall albums: %w", err)
	}

	tracks, err = user.Top(ctx, CategoryTracks, WindowOverall, overallTrackLimit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch overall tracks: %w", err)
	}

	return artists, albums, tracks, nil
}
