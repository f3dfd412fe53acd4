// Package lastfm provides a client library for the Last.fm API 2.0.
//
// # Overview
//
// This package implements a Go client for the Last.fm API, focusing on
// user profile and listening-chart reads. It provides a clean, type-safe
// API with context support and structured error handling.
//
// # Quick Start
//
// First, create a client with your API credentials:
//
//	import "github.com/djotaku/lastfmeoystats/pkg/lastfm"
//
//	client, err := lastfm.NewClient(lastfm.Config{
//	    APIKey:    "your-api-key",
//	    APISecret: "your-api-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Every request is signed with the API secret, so no further
// authentication step is needed for read operations.
//
// # User Statistics
//
// Resolve a user and query their listening charts:
//
//	user, err := client.User().Info(ctx, "rj")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	artists, err := client.User().TopArtists(ctx, user.Name, lastfm.Period12Month, 20)
//	albums, err := client.User().TopAlbums(ctx, user.Name, lastfm.PeriodOverall, 15)
//	tracks, err := client.User().TopTracks(ctx, user.Name, lastfm.PeriodOverall, 15)
//
// Chart entries arrive ordered by descending play count and carry their
// 1-based rank.
//
// # Error Handling
//
// API failures are reported as structured errors carrying the Last.fm
// error code:
//
//	artists, err := client.User().TopArtists(ctx, "nobody", lastfm.PeriodOverall, 10)
//	if err != nil {
//	    var lastfmErr *lastfm.Error
//	    if errors.As(err, &lastfmErr) {
//	        if lastfmErr.Code == lastfm.ErrCodeInvalidParameters {
//	            // Unknown user
//	        }
//	    }
//	}
//
// # Context Support
//
// All API methods accept a context.Context for cancellation and timeouts:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	user, err := client.User().Info(ctx, "rj")
//
// # Configuration
//
// The client can be configured with custom HTTP clients, base URLs (for
// testing), and optional loggers:
//
//	client, err := lastfm.NewClient(lastfm.Config{
//	    APIKey:     "your-api-key",
//	    APISecret:  "your-api-secret",
//	    HTTPClient: &http.Client{Timeout: 30 * time.Second},
//	    BaseURL:    server.URL, // point at a test server
//	    Logger:     myLogger,   // Implements lastfm.Logger interface
//	})
//
// # API Coverage
//
// Currently implemented:
//   - User profiles (user.getInfo)
//   - Listening charts (user.getTopArtists, user.getTopAlbums,
//     user.getTopTracks)
//
// # Last.fm API Documentation
//
// For more information about the Last.fm API:
// https://www.last.fm/api
package lastfm
