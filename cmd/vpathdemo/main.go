// Command vpathdemo builds a few shapes with vpath, runs them through
// flatten, dash and stroke, and prints the results as SVG path data.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/vpath"
)

func main() {
	var (
		scale   = flag.Float64("scale", 1, "approximation scale")
		width   = flag.Float64("width", 4, "stroke width")
		dash    = flag.Float64("dash", 6, "dash length (gap is half of it)")
		input   = flag.String("svg", "", "SVG path data to process instead of the demo shapes")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		vpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	src, err := source(*input)
	if err != nil {
		log.Fatalf("Failed to build path: %v", err)
	}
	report("source", src)

	cache := vpath.NewFlattenCache(0)
	var flat *vpath.Path
	for range 2 {
		if flat, err = cache.Flatten(src, *scale); err != nil {
			log.Fatalf("Failed to flatten: %v", err)
		}
	}
	hits, misses := cache.Stats()
	fmt.Printf("# flatten cache: %d hits, %d misses\n", hits, misses)
	report("flattened", flat)

	dashed := vpath.NewPath()
	if err := src.DashTo(dashed, vpath.NewDash(*dash, *dash/2), *scale); err != nil {
		log.Fatalf("Failed to dash: %v", err)
	}
	report("dashed", dashed)

	params := vpath.RoundStrokeParams().WithWidth(*width)
	stroked := vpath.NewPath()
	if err := src.StrokeTo(stroked, params, *scale); err != nil {
		log.Fatalf("Failed to stroke: %v", err)
	}
	report("stroked", stroked)
}

func source(svg string) (*vpath.Path, error) {
	if svg != "" {
		return vpath.ParseSVG(svg)
	}

	p := vpath.NewPath()
	if err := p.AddRound(vpath.R(10, 10, 120, 80), 15, 15); err != nil {
		return nil, err
	}
	if err := p.AddEllipse(vpath.R(160, 10, 80, 80)); err != nil {
		return nil, err
	}
	if err := p.AddPie(vpath.R(260, 10, 80, 80), math.Pi/6, math.Pi*1.5); err != nil {
		return nil, err
	}

	// Wave built from smooth cubic continuations.
	if err := p.MoveTo(10, 150); err != nil {
		return nil, err
	}
	if err := p.CubicTo(40, 110, 70, 190, 100, 150); err != nil {
		return nil, err
	}
	for range 3 {
		if err := p.SmoothCubicToRel(60, 40, 90, 0); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func report(name string, p *vpath.Path) {
	b := p.BoundingBox()
	fmt.Printf("# %s: %d vertices, %s, length %.2f, bounds (%.2f,%.2f)-(%.2f,%.2f)\n",
		name, p.Len(), p.Type(), p.Length(), b.X, b.Y, b.X2(), b.Y2())
	fmt.Println(p.SVG())
}
