// Package config loads the YAML run configuration: output naming, the
// starting tool and style, tool tuning and notification toggles.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/example/inkshot/internal/annotate"
	"github.com/example/inkshot/internal/style"
)

// Notify holds notification toggles.
type Notify struct {
	Capture bool `yaml:"capture"`
	Save    bool `yaml:"save"`
	Copy    bool `yaml:"copy"`
}

// Tools holds the tool tuning knobs.
type Tools struct {
	Initial          string  `yaml:"initial"`
	CornerRoundness  float64 `yaml:"corner_roundness"`
	BrushHistory     int     `yaml:"brush_history"`
	PrimaryHighlight string  `yaml:"primary_highlight"`
}

// Style holds the starting tool style by name.
type Style struct {
	Color string `yaml:"color"`
	Size  string `yaml:"size"`
}

// Config is the application configuration.
type Config struct {
	Output  string `yaml:"output"`
	SaveDir string `yaml:"save_dir"`
	OnEnter string `yaml:"on_enter"`
	Tools   Tools  `yaml:"tools"`
	Style   Style  `yaml:"style"`
	Notify  Notify `yaml:"notify"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		Output: "inkshot-%Y-%m-%d_%H%M%S.png",
		Tools: Tools{
			Initial:          "pointer",
			CornerRoundness:  12,
			BrushHistory:     8,
			PrimaryHighlight: "block",
		},
		Style: Style{Color: "red", Size: "medium"},
	}
}

// Parse reads a YAML configuration, applying it over the defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// String implements fmt.Stringer and returns the configuration as YAML.
func (c *Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return ""
	}
	return string(out)
}

// ExpandOutput substitutes the strftime-style date tokens of the
// output name with the given time.
func (c *Config) ExpandOutput(t time.Time) string {
	r := strings.NewReplacer(
		"%Y", t.Format("2006"),
		"%m", t.Format("01"),
		"%d", t.Format("02"),
		"%H", t.Format("15"),
		"%M", t.Format("04"),
		"%S", t.Format("05"),
	)
	return r.Replace(c.Output)
}

var colorNames = map[string]style.Color{
	"orange": style.Orange,
	"red":    style.Red,
	"green":  style.Green,
	"blue":   style.Blue,
	"cove":   style.Cove,
	"pink":   style.Pink,
}

var sizeNames = map[string]style.Size{
	"small":  style.Small,
	"medium": style.Medium,
	"large":  style.Large,
}

// InitialStyle resolves the configured style names.
func (c *Config) InitialStyle() (style.Style, error) {
	st := style.Default()
	if c.Style.Color != "" {
		col, ok := colorNames[strings.ToLower(c.Style.Color)]
		if !ok {
			return st, fmt.Errorf("unknown color %q", c.Style.Color)
		}
		st.Color = col
	}
	if c.Style.Size != "" {
		sz, ok := sizeNames[strings.ToLower(c.Style.Size)]
		if !ok {
			return st, fmt.Errorf("unknown size %q", c.Style.Size)
		}
		st.Size = sz
	}
	return st, nil
}

// InitialTool resolves the configured starting tool.
func (c *Config) InitialTool() (annotate.Kind, error) {
	if c.Tools.Initial == "" {
		return annotate.KindPointer, nil
	}
	k, ok := annotate.KindByName(strings.ToLower(c.Tools.Initial))
	if !ok {
		return annotate.KindPointer, fmt.Errorf("unknown tool %q", c.Tools.Initial)
	}
	return k, nil
}

// EnterAction resolves the action bound to Enter when the active tool
// leaves the key unhandled. One of "save", "copy" or "none".
func (c *Config) EnterAction() (string, error) {
	switch strings.ToLower(c.OnEnter) {
	case "", "save":
		return "save", nil
	case "copy":
		return "copy", nil
	case "none":
		return "none", nil
	}
	return "", fmt.Errorf("unknown enter action %q", c.OnEnter)
}

// ToolOptions resolves the tool tuning knobs.
func (c *Config) ToolOptions() (annotate.Options, error) {
	opts := annotate.DefaultOptions()
	if c.Tools.CornerRoundness >= 0 {
		opts.CornerRoundness = c.Tools.CornerRoundness
	}
	if c.Tools.BrushHistory >= 0 {
		opts.BrushHistory = c.Tools.BrushHistory
	}
	switch strings.ToLower(c.Tools.PrimaryHighlight) {
	case "", "block":
		opts.PrimaryHighlight = annotate.HighlightBlock
	case "freehand":
		opts.PrimaryHighlight = annotate.HighlightFreehand
	default:
		return opts, fmt.Errorf("unknown highlighter %q", c.Tools.PrimaryHighlight)
	}
	return opts, nil
}
