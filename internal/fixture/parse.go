package fixture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-boxlayout"
)

var displays = map[string]boxlayout.Display{
	"flex":  boxlayout.DisplayFlex,
	"grid":  boxlayout.DisplayGrid,
	"block": boxlayout.DisplayBlock,
	"none":  boxlayout.DisplayNone,
}

var positions = map[string]boxlayout.Position{
	"relative": boxlayout.PositionRelative,
	"absolute": boxlayout.PositionAbsolute,
}

var directions = map[string]boxlayout.Direction{
	"row":            boxlayout.Row,
	"column":         boxlayout.Column,
	"row-reverse":    boxlayout.RowReverse,
	"column-reverse": boxlayout.ColumnReverse,
}

var wraps = map[string]boxlayout.FlexWrap{
	"nowrap":       boxlayout.NoWrap,
	"wrap":         boxlayout.Wrap,
	"wrap-reverse": boxlayout.WrapReverse,
}

var aligns = map[string]boxlayout.Align{
	"normal":        boxlayout.AlignNormal,
	"start":         boxlayout.AlignStart,
	"end":           boxlayout.AlignEnd,
	"flex-start":    boxlayout.AlignFlexStart,
	"flex-end":      boxlayout.AlignFlexEnd,
	"center":        boxlayout.AlignCenter,
	"baseline":      boxlayout.AlignBaseline,
	"stretch":       boxlayout.AlignStretch,
	"space-between": boxlayout.AlignSpaceBetween,
	"space-around":  boxlayout.AlignSpaceAround,
	"space-evenly":  boxlayout.AlignSpaceEvenly,
}

var justifies = map[string]boxlayout.Justify{
	"normal":        boxlayout.JustifyNormal,
	"start":         boxlayout.JustifyStart,
	"end":           boxlayout.JustifyEnd,
	"flex-start":    boxlayout.JustifyFlexStart,
	"flex-end":      boxlayout.JustifyFlexEnd,
	"center":        boxlayout.JustifyCenter,
	"stretch":       boxlayout.JustifyStretch,
	"space-between": boxlayout.JustifySpaceBetween,
	"space-around":  boxlayout.JustifySpaceAround,
	"space-evenly":  boxlayout.JustifySpaceEvenly,
}

var flows = map[string]boxlayout.GridAutoFlow{
	"row":          boxlayout.FlowRow,
	"column":       boxlayout.FlowColumn,
	"row dense":    boxlayout.FlowRowDense,
	"column dense": boxlayout.FlowColumnDense,
}

// keyword looks s up in table. The empty string leaves *dst unchanged.
func keyword[T any](table map[string]T, s string, dst *T) error {
	if s == "" {
		return nil
	}
	v, ok := table[strings.Join(strings.Fields(s), " ")]
	if !ok {
		return fmt.Errorf("unknown keyword %q", s)
	}
	*dst = v
	return nil
}

// ParseValue parses "auto", a length ("10px" or "10") or a percentage ("50%").
func ParseValue(s string) (boxlayout.Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "auto":
		return boxlayout.Auto(), nil
	case strings.HasSuffix(s, "%"):
		n, err := parseNumber(strings.TrimSuffix(s, "%"))
		if err != nil {
			return boxlayout.Value{}, err
		}
		return boxlayout.Percent(n / 100), nil
	case strings.HasPrefix(s, "calc(") && strings.HasSuffix(s, ")"):
		return parseCalc(s[len("calc(") : len(s)-1])
	default:
		n, err := parseNumber(strings.TrimSuffix(s, "px"))
		if err != nil {
			return boxlayout.Value{}, err
		}
		return boxlayout.Length(n), nil
	}
}

// parseCalc parses a sum of terms, e.g. "100% - 20px + 2px".
func parseCalc(s string) (boxlayout.Value, error) {
	fields := strings.Fields(s)
	if len(fields)%2 == 0 {
		return boxlayout.Value{}, fmt.Errorf("malformed calc(%s)", s)
	}
	first, err := ParseValue(fields[0])
	if err != nil {
		return boxlayout.Value{}, err
	}
	expr := boxlayout.CalcValue(first)
	for i := 1; i < len(fields); i += 2 {
		v, err := ParseValue(fields[i+1])
		if err != nil {
			return boxlayout.Value{}, err
		}
		switch fields[i] {
		case "+":
			expr = boxlayout.CalcAdd(expr, boxlayout.CalcValue(v))
		case "-":
			expr = boxlayout.CalcSub(expr, boxlayout.CalcValue(v))
		default:
			return boxlayout.Value{}, fmt.Errorf("unsupported calc operator %q", fields[i])
		}
	}
	return boxlayout.Calc(expr), nil
}

func parseNumber(s string) (float32, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return float32(n), nil
}

// value parses s into *dst unless s is empty.
func value(s string, dst *boxlayout.Value) error {
	if s == "" {
		return nil
	}
	v, err := ParseValue(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// ParseSpacing parses the CSS shorthand of one to four values.
func ParseSpacing(s string) (boxlayout.Spacing, error) {
	fields := splitTopLevel(s)
	vals := make([]boxlayout.Value, len(fields))
	for i, f := range fields {
		v, err := ParseValue(f)
		if err != nil {
			return boxlayout.Spacing{}, err
		}
		vals[i] = v
	}
	switch len(vals) {
	case 1:
		return boxlayout.SpacingAll(vals[0]), nil
	case 2:
		return boxlayout.SpacingSymmetric(vals[0], vals[1]), nil
	case 3:
		return boxlayout.SpacingTRBL(vals[0], vals[1], vals[2], vals[1]), nil
	case 4:
		return boxlayout.SpacingTRBL(vals[0], vals[1], vals[2], vals[3]), nil
	default:
		return boxlayout.Spacing{}, fmt.Errorf("spacing %q needs 1 to 4 values", s)
	}
}

func spacing(s string, dst *boxlayout.Spacing) error {
	if s == "" {
		return nil
	}
	v, err := ParseSpacing(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// ParseAvailable parses "min-content", "max-content" or a length. The empty
// string is max-content.
func ParseAvailable(s string) (boxlayout.AvailableSpace, error) {
	switch s = strings.TrimSpace(s); s {
	case "", "max-content":
		return boxlayout.MaxContent, nil
	case "min-content":
		return boxlayout.MinContent, nil
	}
	n, err := parseNumber(strings.TrimSuffix(s, "px"))
	if err != nil {
		return boxlayout.AvailableSpace{}, err
	}
	return boxlayout.Definite(n), nil
}

// ParseTrack parses one track sizing function such as "1fr", "auto",
// "minmax(10px, 1fr)" or "fit-content(40px)".
func ParseTrack(s string) (boxlayout.TrackSizing, error) {
	s = strings.TrimSpace(s)
	if name, args, ok := call(s); ok {
		switch name {
		case "minmax":
			parts := splitArgs(args)
			if len(parts) != 2 {
				return boxlayout.TrackSizing{}, fmt.Errorf("minmax needs 2 arguments, got %q", s)
			}
			lo, err := ParseTrack(parts[0])
			if err != nil {
				return boxlayout.TrackSizing{}, err
			}
			hi, err := ParseTrack(parts[1])
			if err != nil {
				return boxlayout.TrackSizing{}, err
			}
			return boxlayout.MinMaxTrack(lo, hi), nil
		case "fit-content":
			limit, err := ParseValue(args)
			if err != nil {
				return boxlayout.TrackSizing{}, err
			}
			return boxlayout.FitContentTrack(limit), nil
		case "calc":
			v, err := ParseValue(s)
			if err != nil {
				return boxlayout.TrackSizing{}, err
			}
			return boxlayout.FixedTrack(v), nil
		default:
			return boxlayout.TrackSizing{}, fmt.Errorf("unknown track function %q", name)
		}
	}
	switch {
	case s == "auto":
		return boxlayout.AutoTrack(), nil
	case s == "min-content":
		return boxlayout.MinContentTrack(), nil
	case s == "max-content":
		return boxlayout.MaxContentTrack(), nil
	case strings.HasSuffix(s, "fr"):
		n, err := parseNumber(strings.TrimSuffix(s, "fr"))
		if err != nil {
			return boxlayout.TrackSizing{}, err
		}
		return boxlayout.FrTrack(n), nil
	}
	v, err := ParseValue(s)
	if err != nil {
		return boxlayout.TrackSizing{}, err
	}
	if v.IsAuto() {
		return boxlayout.AutoTrack(), nil
	}
	return boxlayout.FixedTrack(v), nil
}

// ParseTrackList parses a space separated list of tracks.
func ParseTrackList(s string) ([]boxlayout.TrackSizing, error) {
	var out []boxlayout.TrackSizing
	for _, f := range splitTopLevel(s) {
		t, err := ParseTrack(f)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// ParseTemplate parses a grid template such as "10px repeat(2, 1fr)" or
// "repeat(auto-fill, 20px)".
func ParseTemplate(s string) ([]boxlayout.GridTemplate, error) {
	var out []boxlayout.GridTemplate
	for _, f := range splitTopLevel(s) {
		name, args, ok := call(f)
		if !ok || name != "repeat" {
			t, err := ParseTrack(f)
			if err != nil {
				return nil, err
			}
			out = append(out, boxlayout.Single(t))
			continue
		}
		count, list, found := strings.Cut(args, ",")
		if !found {
			return nil, fmt.Errorf("repeat needs a count and tracks, got %q", f)
		}
		tracks, err := ParseTrackList(list)
		if err != nil {
			return nil, err
		}
		if len(tracks) == 0 {
			return nil, fmt.Errorf("repeat without tracks in %q", f)
		}
		if strings.TrimSpace(count) == "auto-fill" {
			out = append(out, boxlayout.RepeatAutoFill(tracks...))
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid repeat count %q", count)
		}
		out = append(out, boxlayout.Repeat(n, tracks...))
	}
	return out, nil
}

// ParseLine parses grid-row/grid-column: "auto", "2", "-1", "span 2",
// "1 / 3", "2 / span 2".
func ParseLine(s string) (boxlayout.GridLine, error) {
	start, end, hasEnd := strings.Cut(s, "/")
	var line boxlayout.GridLine
	var err error
	if line.Start, err = parsePlacement(start); err != nil {
		return boxlayout.GridLine{}, err
	}
	if hasEnd {
		if line.End, err = parsePlacement(end); err != nil {
			return boxlayout.GridLine{}, err
		}
	}
	return line, nil
}

func parsePlacement(s string) (boxlayout.GridPlacement, error) {
	fields := strings.Fields(s)
	switch {
	case len(fields) == 1 && fields[0] == "auto":
		return boxlayout.GridPlacement{}, nil
	case len(fields) == 2 && fields[0] == "span":
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return boxlayout.GridPlacement{}, fmt.Errorf("invalid span %q", s)
		}
		return boxlayout.SpanOf(n), nil
	case len(fields) == 1:
		n, err := strconv.Atoi(fields[0])
		if err != nil || n == 0 {
			return boxlayout.GridPlacement{}, fmt.Errorf("invalid grid line %q", s)
		}
		return boxlayout.PlaceAt(n), nil
	default:
		return boxlayout.GridPlacement{}, fmt.Errorf("invalid grid placement %q", s)
	}
}

// call splits "name(args)" into its parts.
func call(s string) (name, args string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	return s[:open], s[open+1 : len(s)-1], true
}

// splitTopLevel splits s on whitespace outside parentheses.
func splitTopLevel(s string) []string {
	var out []string
	depth, start := 0, -1
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case depth == 0 && (r == ' ' || r == '\t'):
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

// splitArgs splits function arguments on commas outside parentheses.
func splitArgs(s string) []string {
	var out []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(out, strings.TrimSpace(s[start:]))
}
