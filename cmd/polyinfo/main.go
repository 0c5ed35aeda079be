package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/woozymasta/polymap/internal/geo"
	"github.com/woozymasta/polymap/internal/render"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Input     string `short:"i" long:"in" description:"Input file with a WKT polygon. Reads from stdin if empty"`
	Output    string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format    string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" choice:"wkt" choice:"svg" default:"json"`
	SVGSize   int    `long:"svg-size" description:"SVG canvas size in pixels" default:"512"`
	CloseRing bool   `long:"close-ring" description:"Close the polygon ring if the last point differs from the first"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Read Input
	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}
	} else {
		inputData, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	poly, err := geo.ParsePolygon(strings.TrimSpace(string(inputData)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing polygon: %v\n", err)
		os.Exit(1)
	}
	if opts.CloseRing {
		poly = poly.Closed()
	}

	outputData, err := report(poly, opts.Format, opts.SVGSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building %s output: %v\n", opts.Format, err)
		os.Exit(1)
	}

	if opts.Output != "" {
		err = os.WriteFile(opts.Output, outputData, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Successfully described polygon with %d points to %s (format: %s)\n", len(poly), opts.Output, opts.Format)
	} else {
		fmt.Println(string(outputData))
	}
}

// report renders the polygon, its centroid and bounding box in the given format.
func report(poly geo.Polygon, format string, svgSize int) ([]byte, error) {
	switch format {
	case "wkt":
		return []byte(poly.String()), nil
	case "svg":
		out, err := render.SVG(poly, svgSize)
		return []byte(out), err
	}

	center, err := poly.GravityCenter()
	if err != nil {
		return nil, err
	}
	bb, err := poly.BoundingBox(false)
	if err != nil {
		return nil, err
	}

	fc := geo.NewFeatureCollection(poly, center, bb)

	switch format {
	case "yaml":
		return yaml.Marshal(fc)
	case "json", "":
		return json.MarshalIndent(fc, "", "  ")
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
