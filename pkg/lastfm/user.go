package lastfm

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"
)

// UserService provides read operations against user profiles and listening
// charts.
type UserService struct {
	client *Client
}

// Info fetches profile information for the named user.
//
// Resolving a user through Info validates that the account exists and
// returns the canonical username casing along with profile metadata.
//
// Example:
//
//	user, err := client.User().Info(ctx, "rj")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s has %d scrobbles\n", user.Name, user.PlayCount)
func (s *UserService) Info(ctx context.Context, user string) (*User, error) {
	if user == "" {
		return nil, fmt.Errorf("lastfm: user is required")
	}

	resp, err := s.client.call(ctx, "user.getInfo", map[string]string{
		"user": user,
	})
	if err != nil {
		return nil, err
	}

	info, err := unmarshalUserInfo(resp)
	if err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse user info response: %w", err)
	}

	return info, nil
}

// TopArtists fetches the user's most-played artists for the given period,
// ordered by descending play count.
//
// limit bounds the number of chart entries returned; a limit of 0 leaves
// the choice to the service.
func (s *UserService) TopArtists(ctx context.Context, user string, period Period, limit int) ([]TopArtist, error) {
	resp, err := s.client.call(ctx, "user.getTopArtists", chartParams(user, period, limit))
	if err != nil {
		return nil, err
	}

	artists, err := unmarshalTopArtists(resp)
	if err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse top artists response: %w", err)
	}

	return artists, nil
}

// TopAlbums fetches the user's most-played albums for the given period,
// ordered by descending play count.
func (s *UserService) TopAlbums(ctx context.Context, user string, period Period, limit int) ([]TopAlbum, error) {
	resp, err := s.client.call(ctx, "user.getTopAlbums", chartParams(user, period, limit))
	if err != nil {
		return nil, err
	}

	albums, err := unmarshalTopAlbums(resp)
	if err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse top albums response: %w", err)
	}

	return albums, nil
}

// TopTracks fetches the user's most-played tracks for the given period,
// ordered by descending play count.
func (s *UserService) TopTracks(ctx context.Context, user string, period Period, limit int) ([]TopTrack, error) {
	resp, err := s.client.call(ctx, "user.getTopTracks", chartParams(user, period, limit))
	if err != nil {
		return nil, err
	}

	tracks, err := unmarshalTopTracks(resp)
	if err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse top tracks response: %w", err)
	}

	return tracks, nil
}

// chartParams builds the shared parameter set of the user.getTop* methods.
func chartParams(user string, period Period, limit int) map[string]string {
	params := map[string]string{
		"user": user,
	}
	if period != "" {
		params["period"] = string(period)
	}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	return params
}

// userInfoResponse represents the XML response from user.getInfo.
type userInfoResponse struct {
	Name       string `xml:"user>name"`
	RealName   string `xml:"user>realname"`
	URL        string `xml:"user>url"`
	Country    string `xml:"user>country"`
	PlayCount  int64  `xml:"user>playcount"`
	Registered struct {
		Unixtime string `xml:"unixtime,attr"`
	} `xml:"user>registered"`
}

// unmarshalUserInfo parses the XML response from user.getInfo.
func unmarshalUserInfo(data []byte) (*User, error) {
	// Wrap inner XML in root element for proper unmarshaling
	wrapped := []byte("<root>" + string(data) + "</root>")

	var resp userInfoResponse
	if err := xml.Unmarshal(wrapped, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user info response: %w", err)
	}

	user := &User{
		Name:      resp.Name,
		RealName:  resp.RealName,
		URL:       resp.URL,
		Country:   resp.Country,
		PlayCount: resp.PlayCount,
	}

	if resp.Registered.Unixtime != "" {
		if ts, err := strconv.ParseInt(resp.Registered.Unixtime, 10, 64); err == nil {
			user.Registered = time.Unix(ts, 0).UTC()
		}
	}

	return user, nil
}

// topArtistsResponse represents the XML response from user.getTopArtists.
type topArtistsResponse struct {
	Artists []struct {
		Rank      int    `xml:"rank,attr"`
		Name      string `xml:"name"`
		MBID      string `xml:"mbid"`
		URL       string `xml:"url"`
		PlayCount int    `xml:"playcount"`
	} `xml:"topartists>artist"`
}

// unmarshalTopArtists parses the XML response from user.getTopArtists.
func unmarshalTopArtists(data []byte) ([]TopArtist, error) {
	wrapped := []byte("<root>" + string(data) + "</root>")

	var resp topArtistsResponse
	if err := xml.Unmarshal(wrapped, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal top artists response: %w", err)
	}

	artists := make([]TopArtist, len(resp.Artists))
	for i, a := range resp.Artists {
		artists[i] = TopArtist{
			Rank:      a.Rank,
			Name:      a.Name,
			MBID:      a.MBID,
			URL:       a.URL,
			PlayCount: a.PlayCount,
		}
	}

	return artists, nil
}

// topAlbumsResponse represents the XML response from user.getTopAlbums.
type topAlbumsResponse struct {
	Albums []struct {
		Rank      int    `xml:"rank,attr"`
		Name      string `xml:"name"`
		MBID      string `xml:"mbid"`
		URL       string `xml:"url"`
		PlayCount int    `xml:"playcount"`
		Artist    struct {
			Name string `xml:"name"`
		} `xml:"artist"`
	} `xml:"topalbums>album"`
}

// unmarshalTopAlbums parses the XML response from user.getTopAlbums.
func unmarshalTopAlbums(data []byte) ([]TopAlbum, error) {
	wrapped := []byte("<root>" + string(data) + "</root>")

	var resp topAlbumsResponse
	if err := xml.Unmarshal(wrapped, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal top albums response: %w", err)
	}

	albums := make([]TopAlbum, len(resp.Albums))
	for i, a := range resp.Albums {
		albums[i] = TopAlbum{
			Rank:      a.Rank,
			Name:      a.Name,
			Artist:    a.Artist.Name,
			MBID:      a.MBID,
			URL:       a.URL,
			PlayCount: a.PlayCount,
		}
	}

	return albums, nil
}

// topTracksResponse represents the XML response from user.getTopTracks.
type topTracksResponse struct {
	Tracks []struct {
		Rank      int    `xml:"rank,attr"`
		Name      string `xml:"name"`
		MBID      string `xml:"mbid"`
		URL       string `xml:"url"`
		Duration  string `xml:"duration"`
		PlayCount int    `xml:"playcount"`
		Artist    struct {
			Name string `xml:"name"`
		} `xml:"artist"`
	} `xml:"toptracks>track"`
}

// unmarshalTopTracks parses the XML response from user.getTopTracks.
func unmarshalTopTracks(data []byte) ([]TopTrack, error) {
	wrapped := []byte("<root>" + string(data) + "</root>")

	var resp topTracksResponse
	if err := xml.Unmarshal(wrapped, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal top tracks response: %w", err)
	}

	tracks := make([]TopTrack, len(resp.Tracks))
	for i, t := range resp.Tracks {
		// Duration is parsed leniently: the service emits an empty
		// element when the length is unknown.
		var duration int
		if t.Duration != "" {
			duration, _ = strconv.Atoi(t.Duration)
		}

		tracks[i] = TopTrack{
			Rank:      t.Rank,
			Name:      t.Name,
			Artist:    t.Artist.Name,
			MBID:      t.MBID,
			URL:       t.URL,
			Duration:  duration,
			PlayCount: t.PlayCount,
		}
	}

	return tracks, nil
}
