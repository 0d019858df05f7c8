package fixture

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-boxlayout"
)

func TestParseValue(t *testing.T) {
	type tc struct {
		in      string
		want    boxlayout.Value
		wantErr bool
	}

	tests := map[string]tc{
		"auto":         {in: "auto", want: boxlayout.Auto()},
		"pixels":       {in: "10px", want: boxlayout.Length(10)},
		"bare number":  {in: "2.5", want: boxlayout.Length(2.5)},
		"negative":     {in: "-4px", want: boxlayout.Length(-4)},
		"percent":      {in: "50%", want: boxlayout.Percent(0.5)},
		"padded":       {in: "  7px ", want: boxlayout.Length(7)},
		"empty":        {in: "", wantErr: true},
		"unknown unit": {in: "3em", wantErr: true},
		"bad percent":  {in: "x%", wantErr: true},
		"bare keyword": {in: "none", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseValue(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseValue(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCalc(t *testing.T) {
	type tc struct {
		in      string
		ref     float32
		want    float32
		wantErr bool
	}

	tests := map[string]tc{
		"percent minus length": {in: "calc(100% - 20px)", ref: 200, want: 180},
		"chained":              {in: "calc(10px + 50% - 5px)", ref: 100, want: 55},
		"single term":          {in: "calc(25%)", ref: 40, want: 10},
		"missing operand":      {in: "calc(10px +)", wantErr: true},
		"bad operator":         {in: "calc(10px * 2px)", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := ParseValue(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseValue(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			got, ok := v.Resolve(boxlayout.Some(tt.ref)).Get()
			if !ok || got != tt.want {
				t.Errorf("resolve %q against %v = %v (%v), want %v", tt.in, tt.ref, got, ok, tt.want)
			}
		})
	}
}

func TestParseSpacing(t *testing.T) {
	px := boxlayout.Length

	type tc struct {
		in      string
		want    boxlayout.Spacing
		wantErr bool
	}

	tests := map[string]tc{
		"one":   {in: "5px", want: boxlayout.SpacingAll(px(5))},
		"two":   {in: "1px 2px", want: boxlayout.SpacingSymmetric(px(1), px(2))},
		"three": {in: "1px 2px 3px", want: boxlayout.SpacingTRBL(px(1), px(2), px(3), px(2))},
		"four":  {in: "1px 2px 3px 4px", want: boxlayout.SpacingTRBL(px(1), px(2), px(3), px(4))},
		"auto":  {in: "0 auto", want: boxlayout.SpacingSymmetric(px(0), boxlayout.Auto())},
		"five":  {in: "1 2 3 4 5", wantErr: true},
		"bad":   {in: "1px wide", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSpacing(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSpacing(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseSpacing(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAvailable(t *testing.T) {
	type tc struct {
		in      string
		want    boxlayout.AvailableSpace
		wantErr bool
	}

	tests := map[string]tc{
		"empty":       {in: "", want: boxlayout.MaxContent},
		"max-content": {in: "max-content", want: boxlayout.MaxContent},
		"min-content": {in: "min-content", want: boxlayout.MinContent},
		"pixels":      {in: "120px", want: boxlayout.Definite(120)},
		"number":      {in: "64", want: boxlayout.Definite(64)},
		"percent":     {in: "50%", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAvailable(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAvailable(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseAvailable(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTrack(t *testing.T) {
	type tc struct {
		in      string
		want    boxlayout.TrackSizing
		wantErr bool
	}

	tests := map[string]tc{
		"length":      {in: "10px", want: boxlayout.FixedTrack(boxlayout.Length(10))},
		"percent":     {in: "25%", want: boxlayout.FixedTrack(boxlayout.Percent(0.25))},
		"fr":          {in: "2fr", want: boxlayout.FrTrack(2)},
		"auto":        {in: "auto", want: boxlayout.AutoTrack()},
		"min-content": {in: "min-content", want: boxlayout.MinContentTrack()},
		"max-content": {in: "max-content", want: boxlayout.MaxContentTrack()},
		"fit-content": {in: "fit-content(40px)", want: boxlayout.FitContentTrack(boxlayout.Length(40))},
		"minmax": {
			in:   "minmax(10px, 1fr)",
			want: boxlayout.MinMaxTrack(boxlayout.FixedTrack(boxlayout.Length(10)), boxlayout.FrTrack(1)),
		},
		"minmax arity":     {in: "minmax(10px)", wantErr: true},
		"unknown function": {in: "span(2)", wantErr: true},
		"bad fr":           {in: "xfr", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseTrack(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTrack(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseTrack(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTemplate(t *testing.T) {
	px := func(v float32) boxlayout.TrackSizing { return boxlayout.FixedTrack(boxlayout.Length(v)) }

	type tc struct {
		in      string
		want    []boxlayout.GridTemplate
		wantErr bool
	}

	tests := map[string]tc{
		"singles": {
			in:   "10px 1fr auto",
			want: boxlayout.Tracks(px(10), boxlayout.FrTrack(1), boxlayout.AutoTrack()),
		},
		"repeat": {
			in: "5px repeat(2, 10px 1fr)",
			want: []boxlayout.GridTemplate{
				boxlayout.Single(px(5)),
				boxlayout.Repeat(2, px(10), boxlayout.FrTrack(1)),
			},
		},
		"auto-fill": {
			in:   "repeat(auto-fill, minmax(20px, 1fr))",
			want: []boxlayout.GridTemplate{boxlayout.RepeatAutoFill(boxlayout.MinMaxTrack(px(20), boxlayout.FrTrack(1)))},
		},
		"zero count":  {in: "repeat(0, 10px)", wantErr: true},
		"no tracks":   {in: "repeat(2, )", wantErr: true},
		"no comma":    {in: "repeat(2 10px)", wantErr: true},
		"bad element": {in: "10px nope", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseTemplate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTemplate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseTemplate(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	type tc struct {
		in      string
		want    boxlayout.GridLine
		wantErr bool
	}

	tests := map[string]tc{
		"auto":         {in: "auto", want: boxlayout.GridLine{}},
		"start only":   {in: "2", want: boxlayout.GridLine{Start: boxlayout.PlaceAt(2)}},
		"negative":     {in: "-1", want: boxlayout.GridLine{Start: boxlayout.PlaceAt(-1)}},
		"span":         {in: "span 2", want: boxlayout.Span(2)},
		"start end":    {in: "1 / 3", want: boxlayout.Lines(1, 3)},
		"start span":   {in: "2 / span 3", want: boxlayout.GridLine{Start: boxlayout.PlaceAt(2), End: boxlayout.SpanOf(3)}},
		"span end":     {in: "span 2 / -1", want: boxlayout.GridLine{Start: boxlayout.SpanOf(2), End: boxlayout.PlaceAt(-1)}},
		"line zero":    {in: "0", wantErr: true},
		"span zero":    {in: "span 0", wantErr: true},
		"empty end":    {in: "1 /", wantErr: true},
		"extra tokens": {in: "span 2 3", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseLine(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLine(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitTopLevel(t *testing.T) {
	got := splitTopLevel("  10px minmax(1px, 2fr)\trepeat(2, a b) ")
	want := []string{"10px", "minmax(1px, 2fr)", "repeat(2, a b)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("splitTopLevel mismatch (-want +got):\n%s", diff)
	}
}
