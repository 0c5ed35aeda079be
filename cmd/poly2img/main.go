package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/woozymasta/polymap/internal/config"
	"github.com/woozymasta/polymap/internal/logger"
	"github.com/woozymasta/polymap/internal/processor"
	"github.com/woozymasta/polymap/internal/staticmap"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string        `short:"c" long:"config"     env:"CONFIG_FILE"         description:"Path to YAML configuration file"`
	Polygon    string        `short:"p" long:"polygon"                              description:"WKT polygon, e.g. \"POLYGON ((x1 y1, x2 y2, ...))\""`
	Input      string        `short:"i" long:"in"                                   description:"File with the WKT polygon. Reads from stdin if both --polygon and --in are empty"`
	Output     string        `short:"o" long:"out"                                  description:"Output image path (overwritten)" required:"true"`
	Size       string        `short:"s" long:"size"       env:"MAP_SIZE"            description:"Image size WIDTHxHEIGHT (default 600x600)"`
	Zoom       int           `short:"z" long:"zoom"       env:"MAP_ZOOM"            description:"Zoom level 1..20 (default 15)"`
	APIKey     string        `short:"k" long:"api-key"    env:"GOOGLE_MAPS_API_KEY" description:"Static map API key"`
	Endpoint   string        `long:"endpoint"             env:"MAP_ENDPOINT"        description:"Static map endpoint URL"`
	MapType    string        `long:"map-type"             env:"MAP_TYPE"            description:"Map type (default satellite)" choice:"roadmap" choice:"satellite" choice:"terrain" choice:"hybrid"`
	Format     string        `short:"f" long:"format"                               description:"Output format (default raw)" choice:"raw" choice:"webp"`
	Quality    int           `long:"quality"                                        description:"WebP quality 1..100 (default 85)"`
	Timeout    time.Duration `long:"timeout"              env:"MAP_TIMEOUT"         description:"Request timeout (default 30s)"`
	CloseRing  bool          `long:"close-ring"                                     description:"Close the polygon ring if the last point differs from the first"`
	Progress   bool          `long:"progress"                                       description:"Show download progress"`
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
	}
	cfg.Override(config.Config{
		APIKey:   opts.APIKey,
		Endpoint: opts.Endpoint,
		Size:     opts.Size,
		MapType:  opts.MapType,
		Format:   opts.Format,
		Zoom:     opts.Zoom,
		Quality:  opts.Quality,
		Timeout:  opts.Timeout,
	})
	cfg.ApplyDefaults()

	polygon, err := readPolygon(opts.Polygon, opts.Input, os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read polygon")
	}

	clientOpts := []staticmap.Option{
		staticmap.WithEndpoint(cfg.Endpoint),
		staticmap.WithTimeout(cfg.Timeout),
	}
	if opts.Progress {
		clientOpts = append(clientOpts, staticmap.WithProgress(os.Stderr))
	}
	client := staticmap.NewClient(clientOpts...)

	log.Info().
		Str("out", opts.Output).
		Str("size", cfg.Size).
		Int("zoom", cfg.Zoom).
		Str("map_type", cfg.MapType).
		Str("format", cfg.Format).
		Msg("Starting polygon to image")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	err = processor.PolygonToImage(ctx, client, processor.Job{
		Polygon:   polygon,
		Size:      cfg.Size,
		Zoom:      cfg.Zoom,
		MapType:   cfg.MapType,
		APIKey:    cfg.APIKey,
		Output:    opts.Output,
		Format:    cfg.Format,
		Quality:   cfg.Quality,
		CloseRing: opts.CloseRing,
	})
	if err != nil {
		var httpErr *staticmap.HTTPError
		if errors.As(err, &httpErr) {
			log.Fatal().
				Int("status", httpErr.StatusCode).
				Str("body", strings.TrimSpace(string(httpErr.Body))).
				Msg("Map service rejected the request")
		}
		log.Fatal().Err(err).Msg("Failed to save map image")
	}

	log.Info().Str("out", opts.Output).Msg("Done")
}

// readPolygon returns the inline polygon, the content of path, or stdin, in that order.
func readPolygon(inline, path string, stdin io.Reader) (string, error) {
	if inline != "" {
		return strings.TrimSpace(inline), nil
	}

	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("polygon input is empty")
	}
	return text, nil
}
