package fixture

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/grindlemire/go-boxlayout"
)

// Style converts s into a layout style, starting from the CSS initial
// values. Every malformed property is reported.
func (s StyleSpec) Style() (boxlayout.Style, error) {
	st := boxlayout.DefaultStyle()
	var mErr multierror.Error

	check := func(field string, err error) {
		if err != nil {
			_ = multierror.Append(&mErr, multierror.Prefix(err, field+":"))
		}
	}

	check("display", keyword(displays, s.Display, &st.Display))
	check("position", keyword(positions, s.Position, &st.Position))

	check("width", value(s.Width, &st.Width))
	check("height", value(s.Height, &st.Height))
	check("min_width", value(s.MinWidth, &st.MinWidth))
	check("min_height", value(s.MinHeight, &st.MinHeight))
	check("max_width", value(s.MaxWidth, &st.MaxWidth))
	check("max_height", value(s.MaxHeight, &st.MaxHeight))
	if s.AspectRatio != nil {
		st.AspectRatio = boxlayout.Some(*s.AspectRatio)
	}

	check("margin", spacing(s.Margin, &st.Margin))
	check("padding", spacing(s.Padding, &st.Padding))
	check("border", spacing(s.Border, &st.Border))
	check("inset", spacing(s.Inset, &st.Inset))
	check("gap", gap(s.Gap, &st))
	check("row_gap", value(s.RowGap, &st.RowGap))
	check("column_gap", value(s.ColumnGap, &st.ColumnGap))

	check("direction", keyword(directions, s.Direction, &st.Direction))
	check("wrap", keyword(wraps, s.Wrap, &st.Wrap))
	check("flex_basis", value(s.FlexBasis, &st.FlexBasis))
	if s.FlexGrow != nil {
		st.FlexGrow = *s.FlexGrow
	}
	if s.FlexShrink != nil {
		st.FlexShrink = *s.FlexShrink
	}

	check("align_items", keyword(aligns, s.AlignItems, &st.AlignItems))
	check("align_self", keyword(aligns, s.AlignSelf, &st.AlignSelf))
	check("align_content", keyword(aligns, s.AlignContent, &st.AlignContent))
	check("justify_items", keyword(aligns, s.JustifyItems, &st.JustifyItems))
	check("justify_self", keyword(aligns, s.JustifySelf, &st.JustifySelf))
	check("justify_content", keyword(justifies, s.JustifyContent, &st.JustifyContent))

	var err error
	if s.GridTemplateColumns != "" {
		st.GridTemplateColumns, err = ParseTemplate(s.GridTemplateColumns)
		check("grid_template_columns", err)
	}
	if s.GridTemplateRows != "" {
		st.GridTemplateRows, err = ParseTemplate(s.GridTemplateRows)
		check("grid_template_rows", err)
	}
	if s.GridAutoColumns != "" {
		st.GridAutoColumns, err = ParseTrackList(s.GridAutoColumns)
		check("grid_auto_columns", err)
	}
	if s.GridAutoRows != "" {
		st.GridAutoRows, err = ParseTrackList(s.GridAutoRows)
		check("grid_auto_rows", err)
	}
	check("grid_auto_flow", keyword(flows, s.GridAutoFlow, &st.GridAutoFlow))
	if s.GridColumn != "" {
		st.GridColumn, err = ParseLine(s.GridColumn)
		check("grid_column", err)
	}
	if s.GridRow != "" {
		st.GridRow, err = ParseLine(s.GridRow)
		check("grid_row", err)
	}

	return st, mErr.ErrorOrNil()
}

// gap parses the shorthand "<row> [<column>]".
func gap(s string, st *boxlayout.Style) error {
	if s == "" {
		return nil
	}
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return fmt.Errorf("gap %q needs 1 or 2 values", s)
	}
	row, err := ParseValue(fields[0])
	if err != nil {
		return err
	}
	col := row
	if len(fields) == 2 {
		if col, err = ParseValue(fields[1]); err != nil {
			return err
		}
	}
	st.RowGap, st.ColumnGap = row, col
	return nil
}
