package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vasalvit/svgoffset"
)

// config holds the settings that can come from a JSON file. Pointer fields
// distinguish an explicit zero from an absent key.
type config struct {
	Distance     float64  `json:"distance"`
	Join         string   `json:"join,omitempty"`
	End          string   `json:"end,omitempty"`
	MiterLimit   float64  `json:"miter_limit,omitempty"`
	ArcTolerance float64  `json:"arc_tolerance,omitempty"`
	AnchorX      *float64 `json:"anchor_x,omitempty"`
	AnchorY      *float64 `json:"anchor_y,omitempty"`

	Scale            float64  `json:"scale,omitempty"`
	FlattenTolerance float64  `json:"flatten_tolerance,omitempty"`
	MinDistance      *float64 `json:"min_distance,omitempty"`

	LogLevel string `json:"log_level,omitempty"`
}

func defaults() config {
	return config{
		Join:             "round",
		End:              "polygon",
		MiterLimit:       svgoffset.DefaultMiterLimit,
		ArcTolerance:     svgoffset.DefaultArcTolerance,
		Scale:            svgoffset.DefaultScale,
		FlattenTolerance: svgoffset.DefaultFlattenTolerance,
	}
}

// loadConfig reads a config file, rejecting unknown keys.
func loadConfig(path string) (config, error) {
	var cfg config
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// merge returns base with every field set in over replaced.
func merge(base, over config) config {
	out := base
	if over.Distance != 0 {
		out.Distance = over.Distance
	}
	if over.Join != "" {
		out.Join = over.Join
	}
	if over.End != "" {
		out.End = over.End
	}
	if over.MiterLimit != 0 {
		out.MiterLimit = over.MiterLimit
	}
	if over.ArcTolerance != 0 {
		out.ArcTolerance = over.ArcTolerance
	}
	if over.AnchorX != nil {
		out.AnchorX = over.AnchorX
	}
	if over.AnchorY != nil {
		out.AnchorY = over.AnchorY
	}
	if over.Scale != 0 {
		out.Scale = over.Scale
	}
	if over.FlattenTolerance != 0 {
		out.FlattenTolerance = over.FlattenTolerance
	}
	if over.MinDistance != nil {
		out.MinDistance = over.MinDistance
	}
	if over.LogLevel != "" {
		out.LogLevel = over.LogLevel
	}
	return out
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cfg config, f cliFlags, set map[string]bool) config {
	if set["distance"] {
		cfg.Distance = f.distance
	}
	if set["join"] {
		cfg.Join = f.join
	}
	if set["end"] {
		cfg.End = f.end
	}
	if set["miter"] {
		cfg.MiterLimit = f.miter
	}
	if set["arc"] {
		cfg.ArcTolerance = f.arc
	}
	if set["anchor-x"] {
		cfg.AnchorX = &f.anchorX
	}
	if set["anchor-y"] {
		cfg.AnchorY = &f.anchorY
	}
	return cfg
}

func (c config) params() (svgoffset.Params, error) {
	join, err := svgoffset.ParseJoinType(c.Join)
	if err != nil {
		return svgoffset.Params{}, err
	}
	end, err := svgoffset.ParseEndType(c.End)
	if err != nil {
		return svgoffset.Params{}, err
	}
	p := svgoffset.Params{
		Distance:     c.Distance,
		Join:         join,
		End:          end,
		MiterLimit:   c.MiterLimit,
		ArcTolerance: c.ArcTolerance,
	}
	if c.AnchorX != nil {
		p.Anchor.X, p.Anchor.HasX = *c.AnchorX, true
	}
	if c.AnchorY != nil {
		p.Anchor.Y, p.Anchor.HasY = *c.AnchorY, true
	}
	return p, nil
}

func (c config) options() []svgoffset.Option {
	opts := []svgoffset.Option{
		svgoffset.WithScale(c.Scale),
		svgoffset.WithFlattenTolerance(c.FlattenTolerance),
	}
	if c.MinDistance != nil {
		opts = append(opts, svgoffset.WithMinDistance(*c.MinDistance))
	}
	return opts
}
