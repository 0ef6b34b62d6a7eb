package annotate

import "github.com/example/inkshot/internal/style"

// Options carries the tool tuning knobs loaded from configuration.
type Options struct {
	// CornerRoundness is the rectangle and block-highlight corner
	// radius in image units.
	CornerRoundness float64
	// BrushHistory is the brush smoothing window; 0 disables
	// smoothing.
	BrushHistory int
	// PrimaryHighlight is the highlighter mode a plain drag uses.
	PrimaryHighlight HighlightMode
}

// DefaultOptions mirrors the built-in configuration defaults.
func DefaultOptions() Options {
	return Options{CornerRoundness: 12, BrushHistory: 8, PrimaryHighlight: HighlightBlock}
}

// Registry owns one instance of every tool and routes switching. The
// crop tool is always present and separately reachable because the
// compositor overlays its rectangle regardless of the active tool.
type Registry struct {
	tools  map[Kind]Tool
	crop   *CropTool
	zoom   *ZoomTool
	active Kind
}

// NewRegistry builds the tool set with a shared starting style.
func NewRegistry(st style.Style, opts Options) *Registry {
	crop := NewCropTool()
	zoom := NewZoomTool()
	r := &Registry{
		tools: map[Kind]Tool{
			KindPointer:   NewPointerTool(),
			KindCrop:      crop,
			KindLine:      NewLineTool(st),
			KindArrow:     NewArrowTool(st),
			KindRectangle: NewRectangleTool(st, opts.CornerRoundness),
			KindEllipse:   NewEllipseTool(st),
			KindText:      NewTextTool(st),
			KindMarker:    NewMarkerTool(st),
			KindBlur:      NewBlurTool(st),
			KindHighlight: NewHighlightTool(st, opts.PrimaryHighlight, opts.CornerRoundness),
			KindBrush:     NewBrushTool(st, opts.BrushHistory),
			KindZoom:      zoom,
		},
		crop:   crop,
		zoom:   zoom,
		active: KindPointer,
	}
	return r
}

// Active is the current tool.
func (r *Registry) Active() Tool { return r.tools[r.active] }

// ActiveKind is the current tool's identity.
func (r *Registry) ActiveKind() Kind { return r.active }

// Crop is the always-present crop tool.
func (r *Registry) Crop() *CropTool { return r.crop }

// Zoom is the display magnification tool.
func (r *Registry) Zoom() *ZoomTool { return r.zoom }

// Tool returns the instance for a kind.
func (r *Registry) Tool(k Kind) Tool { return r.tools[k] }

// Switch makes k the active tool. The outgoing tool is deactivated
// first and may hand back a finished drawable to commit (a text block
// in progress, for example); the incoming tool then receives the
// current style and its activation.
func (r *Registry) Switch(k Kind, st style.Style) Update {
	if _, ok := r.tools[k]; !ok || k == r.active {
		return Unmodified
	}
	out := r.tools[r.active].HandleDeactivated()
	r.active = k
	in := r.tools[k]
	su := in.HandleStyleChanged(st)
	au := in.HandleActivated()
	return Update{
		Redraw: out.Redraw || su.Redraw || au.Redraw || out.Commit != nil,
		Commit: out.Commit,
	}
}

// Broadcast applies a style change to the active tool.
func (r *Registry) Broadcast(st style.Style) Update {
	return r.Active().HandleStyleChanged(st)
}
