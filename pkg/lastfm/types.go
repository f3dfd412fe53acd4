package lastfm

import (
	"time"
)

// Period identifies the time window of a top-chart query.
type Period string

// Time windows accepted by the user.getTop* methods.
const (
	PeriodOverall Period = "overall" // Entire account history
	Period7Day    Period = "7day"
	Period1Month  Period = "1month"
	Period3Month  Period = "3month"
	Period6Month  Period = "6month"
	Period12Month Period = "12month" // Trailing twelve months
)

// User holds profile information returned by user.getInfo.
type User struct {
	Name       string    // Canonical Last.fm username
	RealName   string    // Optional display name
	URL        string    // Profile URL
	Country    string    // Optional country name
	PlayCount  int64     // Total scrobbles across the account
	Registered time.Time // Account registration time (zero if absent)
}

// TopArtist is a single entry of a user.getTopArtists chart.
type TopArtist struct {
	Rank      int    // 1-based chart position
	Name      string // Artist name
	MBID      string // Optional MusicBrainz ID
	URL       string // Artist page URL
	PlayCount int    // Scrobbles within the queried period
}

// TopAlbum is a single entry of a user.getTopAlbums chart.
type TopAlbum struct {
	Rank      int    // 1-based chart position
	Name      string // Album title
	Artist    string // Album artist name
	MBID      string // Optional MusicBrainz ID
	URL       string // Album page URL
	PlayCount int    // Scrobbles within the queried period
}

// TopTrack is a single entry of a user.getTopTracks chart.
type TopTrack struct {
	Rank      int    // 1-based chart position
	Name      string // Track title
	Artist    string // Track artist name
	MBID      string // Optional MusicBrainz ID
	URL       string // Track page URL
	Duration  int    // Track length in seconds, 0 if unknown
	PlayCount int    // Scrobbles within the queried period
}
