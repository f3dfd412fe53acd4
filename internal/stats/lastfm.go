package stats

import (
	"context"
	"fmt"

	"github.com/djotaku/lastfmeoystats/pkg/lastfm"
)

// LastFM adapts a Last.fm SDK client to the Source interface.
type LastFM struct {
	client *lastfm.Client
}

// NewLastFM wraps an SDK client as a chart source.
func NewLastFM(client *lastfm.Client) *LastFM {
	return &LastFM{client: client}
}

// ResolveUser looks the account up via user.getInfo and returns a handle
// carrying the canonical username from the profile.
func (s *LastFM) ResolveUser(ctx context.Context, name string) (User, error) {
	info, err := s.client.User().Info(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %q: %w", name, err)
	}

	return &lastfmUser{client: s.client, info: info}, nil
}

// lastfmUser is a resolved account backed by the Last.fm API.
type lastfmUser struct {
	client *lastfm.Client
	info   *lastfm.User
}

func (u *lastfmUser) Name() string {
	return u.info.Name
}

func (u *lastfmUser) PlayCount() int64 {
	return u.info.PlayCount
}

func (u *lastfmUser) Top(ctx context.Context, category Category, window Window, limit int) (RankedList, error) {
	period := window.period()

	switch category {
	case CategoryArtists:
		artists, err := u.client.User().TopArtists(ctx, u.info.Name, period, limit)
		if err != nil {
			return nil, err
		}

		list := make(RankedList, len(artists))
		for i, artist := range artists {
			list[i] = RankedItem{Name: artist.Name, PlayCount: artist.PlayCount}
		}
		return list, nil

	case CategoryAlbums:
		albums, err := u.client.User().TopAlbums(ctx, u.info.Name, period, limit)
		if err != nil {
			return nil, err
		}

		list := make(RankedList, len(albums))
		for i, album := range albums {
			list[i] = RankedItem{Name: displayName(album.Artist, album.Name), PlayCount: album.PlayCount}
		}
		return list, nil

	case CategoryTracks:
		tracks, err := u.client.User().TopTracks(ctx, u.info.Name, period, limit)
		if err != nil {
			return nil, err
		}

		list := make(RankedList, len(tracks))
		for i, track := range tracks {
			list[i] = RankedItem{Name: displayName(track.Artist, track.Name), PlayCount: track.PlayCount}
		}
		return list, nil

	default:
		return nil, fmt.Errorf("unknown category %q", category)
	}
}

// period maps a report window onto the API's period parameter.
func (w Window) period() lastfm.Period {
	if w == WindowAnnual {
		return lastfm.Period12Month
	}
	return lastfm.PeriodOverall
}

// displayName renders an artist-qualified item name. Albums and tracks are
// labeled "Artist - Title" so that same-titled releases by different artists
// stay distinguishable in the reports.
func displayName(artist, title string) string {
	if artist == "" {
		return title
	}
	return artist + " - " + title
}
