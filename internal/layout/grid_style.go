package layout

// SizingKind identifies a grid track sizing function.
type SizingKind uint8

const (
	SizingAuto       SizingKind = iota // auto
	SizingFixed                        // a length or percentage
	SizingMinContent                   // min-content
	SizingMaxContent                   // max-content
	SizingFitContent                   // fit-content(limit), max side only
	SizingFr                           // flexible fraction, max side only
)

// TrackFunc is one side of a minmax() pair.
type TrackFunc struct {
	Kind  SizingKind
	Value Value   // SizingFixed and SizingFitContent
	Fr    float32 // SizingFr
}

// TrackSizing is a track's min and max sizing functions.
type TrackSizing struct {
	Min, Max TrackFunc
}

// FixedTrack returns a track of a length or percentage.
func FixedTrack(v Value) TrackSizing {
	f := TrackFunc{Kind: SizingFixed, Value: v}
	return TrackSizing{Min: f, Max: f}
}

// FrTrack returns minmax(auto, <fr>fr).
func FrTrack(fr float32) TrackSizing {
	return TrackSizing{Min: TrackFunc{Kind: SizingAuto}, Max: TrackFunc{Kind: SizingFr, Fr: fr}}
}

// AutoTrack returns an auto track.
func AutoTrack() TrackSizing {
	return TrackSizing{Min: TrackFunc{Kind: SizingAuto}, Max: TrackFunc{Kind: SizingAuto}}
}

// MinContentTrack returns a min-content track.
func MinContentTrack() TrackSizing {
	f := TrackFunc{Kind: SizingMinContent}
	return TrackSizing{Min: f, Max: f}
}

// MaxContentTrack returns a max-content track.
func MaxContentTrack() TrackSizing {
	f := TrackFunc{Kind: SizingMaxContent}
	return TrackSizing{Min: f, Max: f}
}

// FitContentTrack returns fit-content(limit), i.e. minmax(auto, max-content) capped at limit.
func FitContentTrack(limit Value) TrackSizing {
	return TrackSizing{Min: TrackFunc{Kind: SizingAuto}, Max: TrackFunc{Kind: SizingFitContent, Value: limit}}
}

// MinMaxTrack returns minmax(lo, hi) using lo's min function and hi's max function.
// A flexible or fit-content min function is treated as auto.
func MinMaxTrack(lo, hi TrackSizing) TrackSizing {
	m := lo.Min
	if m.Kind == SizingFr || m.Kind == SizingFitContent {
		m = TrackFunc{Kind: SizingAuto}
	}
	return TrackSizing{Min: m, Max: hi.Max}
}

// AutoFill marks a GridTemplate repetition count as repeat(auto-fill, ...).
const AutoFill = -1

// GridTemplate is one entry of grid-template-columns/rows: either a single
// track or a repeat() of several tracks.
type GridTemplate struct {
	Track  TrackSizing
	Count  int
	Tracks []TrackSizing
}

// Single returns a template entry holding one track.
func Single(t TrackSizing) GridTemplate { return GridTemplate{Track: t} }

// Repeat returns repeat(count, tracks...). Counts below 1 are treated as 1.
func Repeat(count int, tracks ...TrackSizing) GridTemplate {
	return GridTemplate{Count: max(count, 1), Tracks: tracks}
}

// RepeatAutoFill returns repeat(auto-fill, tracks...).
func RepeatAutoFill(tracks ...TrackSizing) GridTemplate {
	return GridTemplate{Count: AutoFill, Tracks: tracks}
}

// Tracks is shorthand for a template of single tracks.
func Tracks(ts ...TrackSizing) []GridTemplate {
	out := make([]GridTemplate, len(ts))
	for i, t := range ts {
		out[i] = Single(t)
	}
	return out
}

func (g GridTemplate) isRepeat() bool { return len(g.Tracks) > 0 }

func (g GridTemplate) isAutoFill() bool { return g.isRepeat() && g.Count == AutoFill }

// PlacementKind selects how a grid line is specified.
type PlacementKind uint8

const (
	PlaceAuto PlacementKind = iota // auto
	PlaceLine                      // a 1-based line number, negative counts from the end
	PlaceSpan                      // span n
)

// GridPlacement is one end of an item's grid-row or grid-column.
type GridPlacement struct {
	Kind  PlacementKind
	Value int
}

// PlaceAt returns a line placement. Line 0 is invalid and behaves as auto.
func PlaceAt(line int) GridPlacement {
	if line == 0 {
		return GridPlacement{}
	}
	return GridPlacement{Kind: PlaceLine, Value: line}
}

// SpanOf returns a span placement. Spans below 1 are treated as 1.
func SpanOf(n int) GridPlacement {
	return GridPlacement{Kind: PlaceSpan, Value: max(n, 1)}
}

// GridLine is the start and end placement of an item on one axis.
type GridLine struct {
	Start, End GridPlacement
}

// Lines returns a GridLine from start to end (CSS line numbers).
func Lines(start, end int) GridLine { return GridLine{Start: PlaceAt(start), End: PlaceAt(end)} }

// Span returns a GridLine with an auto start and a span.
func Span(n int) GridLine { return GridLine{Start: SpanOf(n)} }

// GridAutoFlow controls the auto-placement algorithm.
type GridAutoFlow uint8

const (
	FlowRow         GridAutoFlow = iota // Fill rows first, sparse
	FlowColumn                          // Fill columns first, sparse
	FlowRowDense                        // Fill rows first, backfilling holes
	FlowColumnDense                     // Fill columns first, backfilling holes
)

// primaryAxis is the axis the placement cursor walks along first.
func (f GridAutoFlow) primaryAxis() Axis {
	if f == FlowRow || f == FlowRowDense {
		return Horizontal
	}
	return Vertical
}

func (f GridAutoFlow) isDense() bool { return f == FlowRowDense || f == FlowColumnDense }

// gridLineFor returns the item's placement along axis (columns are horizontal).
func (s *Style) gridLineFor(axis Axis) GridLine {
	if axis == Horizontal {
		return s.GridColumn
	}
	return s.GridRow
}

func (s *Style) gridTemplateFor(axis Axis) []GridTemplate {
	if axis == Horizontal {
		return s.GridTemplateColumns
	}
	return s.GridTemplateRows
}

func (s *Style) gridAutoFor(axis Axis) []TrackSizing {
	if axis == Horizontal {
		return s.GridAutoColumns
	}
	return s.GridAutoRows
}
