// Package report turns a user's listening statistics into the year-end
// output set: six ranked text lists and six bar-chart images.
package report

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/djotaku/lastfmeoystats/internal/chart"
	"github.com/djotaku/lastfmeoystats/internal/stats"
)

// Renderer draws a ranked list as a chart image file.
type Renderer interface {
	RenderFile(path string, list stats.RankedList, params chart.Params) error
}

// Config holds the dependencies and settings for a Generator.
type Config struct {
	// User is the resolved account whose statistics are reported.
	User stats.User

	// Renderer draws the chart images.
	Renderer Renderer

	// OutputDir is the directory the reports are written to.
	// Defaults to the current directory.
	OutputDir string

	// Year appears in the annual chart titles. Defaults to the current
	// calendar year.
	Year int

	// Logger is used for progress logging.
	Logger zerolog.Logger
}

// Generator produces the full report set for one user.
type Generator struct {
	user      stats.User
	renderer  Renderer
	outputDir string
	year      int
	logger    zerolog.Logger
}

// New returns a Generator for the given configuration.
func New(cfg Config) *Generator {
	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	year := cfg.Year
	if year <= 0 {
		year = time.Now().Year()
	}

	return &Generator{
		user:      cfg.User,
		renderer:  cfg.Renderer,
		outputDir: outputDir,
		year:      year,
		logger:    cfg.Logger,
	}
}

// job pairs one ranked list with its output files and chart labeling.
type job struct {
	list      stats.RankedList
	listFile  string
	chartFile string
	params    chart.Params
}

// Run fetches the user's annual and all-time statistics and writes the text
// list and chart image for each of the six category/window pairs. It stops
// at the first failure; a completed run has written all twelve files.
func (g *Generator) Run(ctx context.Context) error {
	g.logger.Info().Str("user", g.user.Name()).Msg("fetching annual statistics")
	annualArtists, annualAlbums, annualTracks, err := stats.FetchAnnual(ctx, g.user)
	if err != nil {
		return err
	}

	g.logger.Info().Str("user", g.user.Name()).Msg("fetching overall statistics")
	overallArtists, overallAlbums, overallTracks, err := stats.FetchOverall(ctx, g.user)
	if err != nil {
		return err
	}

	jobs := g.buildJobs(
		annualArtists, annualAlbums, annualTracks,
		overallArtists, overallAlbums, overallTracks,
	)

	for _, j := range jobs {
		if err := g.emit(j); err != nil {
			return err
		}
	}

	g.logger.Info().Int("reports", len(jobs)).Str("dir", g.outputDir).Msg("report complete")
	return nil
}

// emit writes one job's text list and then its chart.
func (g *Generator) emit(j job) error {
	if err := WriteRankedList(j.list, filepath.Join(g.outputDir, j.listFile)); err != nil {
		return err
	}
	g.logger.Info().Str("file", j.listFile).Int("entries", len(j.list)).Msg("wrote ranked list")

	if err := g.renderer.RenderFile(filepath.Join(g.outputDir, j.chartFile), j.list, j.params); err != nil {
		return err
	}
	g.logger.Info().Str("file", j.chartFile).Msg("rendered chart")

	return nil
}

// buildJobs lays out the six reports in their fixed output order. The image
// names for artists are singular while the list names are plural; the
// published reports have always used these exact names.
func (g *Generator) buildJobs(annualArtists, annualAlbums, annualTracks, overallArtists, overallAlbums, overallTracks stats.RankedList) []job {
	return []job{
		{
			list:      annualArtists,
			listFile:  "top_annual_artists",
			chartFile: "top_annual_artist.jpg",
			params: chart.Params{
				Title:  fmt.Sprintf("Top Artists of %d", g.year),
				XLabel: "Artists",
				YLabel: "Listens",
			},
		},
		{
			list:      overallArtists,
			listFile:  "top_overall_artists",
			chartFile: "top_overall_artist.jpg",
			params: chart.Params{
				Title:  "Top Artists Overall",
				XLabel: "Artists",
				YLabel: "Listens",
			},
		},
		{
			list:      annualAlbums,
			listFile:  "top_annual_albums",
			chartFile: "top_annual_albums.jpg",
			params: chart.Params{
				Title:  fmt.Sprintf("Top Albums of %d", g.year),
				XLabel: "Albums",
				YLabel: "Listens",
			},
		},
		{
			list:      overallAlbums,
			listFile:  "top_overall_albums",
			chartFile: "top_overall_albums.jpg",
			params: chart.Params{
				Title:  "Top Albums Overall",
				XLabel: "Albums",
				YLabel: "Listens",
			},
		},
		{
			list:      annualTracks,
			listFile:  "top_annual_tracks",
			chartFile: "top_annual_tracks.jpg",
			params: chart.Params{
				Title:  fmt.Sprintf("Top Tracks of %d", g.year),
				XLabel: "Tracks",
				YLabel: "Listens",
			},
		},
		{
			list:      overallTracks,
			listFile:  "top_overall_tracks",
			chartFile: "top_overall_tracks.jpg",
			params: chart.Params{
				Title:  "Top Tracks Overall",
				XLabel: "Tracks",
				YLabel: "Listens",
			},
		},
	}
}
