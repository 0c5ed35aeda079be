// Package processor turns polygon descriptions into saved map images.
package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/woozymasta/polymap/internal/geo"
	"github.com/woozymasta/polymap/internal/staticmap"

	"github.com/rs/zerolog/log"
)

// Fetcher downloads a static map image. *staticmap.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, req staticmap.Request) ([]byte, error)
}

// Job is a single polygon to image conversion.
type Job struct {
	Polygon   string // WKT "POLYGON ((x y, ...))"
	Size      string // e.g. "600x600"
	MapType   string // defaults to satellite
	APIKey    string
	Output    string // destination file, overwritten
	Format    string // FormatRaw (default) or FormatWebP
	Zoom      int    // 1..20
	Quality   int    // webp quality, 1..100
	CloseRing bool   // append the first point when the ring is open
}

// FileWriteError reports that the output file could not be written.
type FileWriteError struct {
	Err  error
	Path string
}

// Error implements the error interface.
func (e *FileWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileWriteError) Unwrap() error {
	return e.Err
}

// PolygonToImage parses the job polygon, fetches a map centered on its
// centroid and writes the image to job.Output.
// Either the whole file is written or the output path is left untouched.
func PolygonToImage(ctx context.Context, f Fetcher, job Job) error {
	if job.Format != "" && job.Format != FormatRaw && job.Format != FormatWebP {
		return fmt.Errorf("unknown output format %q", job.Format)
	}

	poly, err := geo.ParsePolygon(job.Polygon)
	if err != nil {
		return fmt.Errorf("parse polygon: %w", err)
	}

	if job.CloseRing && !poly.IsClosed() {
		log.Debug().Int("points", len(poly)).Msg("Closing open polygon ring")
		poly = poly.Closed()
	}

	center, err := poly.GravityCenter()
	if err != nil {
		return fmt.Errorf("polygon centroid: %w", err)
	}
	coord := center.Coordinate()

	log.Info().
		Int("points", len(poly)).
		Str("center", coord).
		Int("zoom", job.Zoom).
		Str("size", job.Size).
		Msg("Polygon centroid computed")

	data, err := f.Fetch(ctx, staticmap.Request{
		Center:  coord,
		Size:    job.Size,
		Zoom:    job.Zoom,
		MapType: job.MapType,
		APIKey:  job.APIKey,
	})
	if err != nil {
		return fmt.Errorf("fetch map: %w", err)
	}

	out, err := encodeImage(data, job.Format, job.Quality)
	if err != nil {
		return err
	}

	if err := saveImage(job.Output, out); err != nil {
		return err
	}

	log.Info().
		Str("path", job.Output).
		Int("bytes", len(out)).
		Msg("Map image saved")

	return nil
}

// saveImage writes data next to path and renames it into place.
func saveImage(path string, data []byte) error {
	if path == "" {
		return &FileWriteError{Path: path, Err: errors.New("output path is empty")}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &FileWriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.part")
	if err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &FileWriteError{Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &FileWriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return &FileWriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &FileWriteError{Path: path, Err: err}
	}

	return nil
}
