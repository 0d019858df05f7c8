package fixture

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/shoenig/test/must"

	"github.com/grindlemire/go-boxlayout"
)

func TestStyleSpec(t *testing.T) {
	grow := float32(2)
	ratio := float32(1.5)
	in := StyleSpec{
		Display:             "grid",
		Position:            "absolute",
		Width:               "50%",
		MaxHeight:           "30px",
		AspectRatio:         &ratio,
		Margin:              "0 auto",
		Gap:                 "4px 8px",
		Direction:           "column-reverse",
		Wrap:                "wrap",
		FlexGrow:            &grow,
		AlignItems:          "center",
		JustifyContent:      "space-between",
		GridTemplateColumns: "repeat(3, 1fr)",
		GridAutoRows:        "10px auto",
		GridAutoFlow:        "column  dense",
		GridColumn:          "span 2",
		GridRow:             "1 / 3",
	}

	st, err := in.Style()
	must.NoError(t, err)

	must.Eq(t, boxlayout.DisplayGrid, st.Display)
	must.Eq(t, boxlayout.PositionAbsolute, st.Position)
	must.Eq(t, boxlayout.Percent(0.5), st.Width)
	must.Eq(t, boxlayout.Length(30), st.MaxHeight)
	must.Eq(t, boxlayout.Auto(), st.Height)
	must.Eq(t, boxlayout.Some(1.5), st.AspectRatio)
	must.Eq(t, boxlayout.SpacingSymmetric(boxlayout.Zero(), boxlayout.Auto()), st.Margin)
	must.Eq(t, boxlayout.Length(4), st.RowGap)
	must.Eq(t, boxlayout.Length(8), st.ColumnGap)
	must.Eq(t, boxlayout.ColumnReverse, st.Direction)
	must.Eq(t, boxlayout.Wrap, st.Wrap)
	must.Eq(t, float32(2), st.FlexGrow)
	must.Eq(t, float32(1), st.FlexShrink)
	must.Eq(t, boxlayout.AlignCenter, st.AlignItems)
	must.Eq(t, boxlayout.JustifySpaceBetween, st.JustifyContent)
	must.SliceLen(t, 1, st.GridTemplateColumns)
	must.SliceLen(t, 2, st.GridAutoRows)
	must.Eq(t, boxlayout.FlowColumnDense, st.GridAutoFlow)
	must.Eq(t, boxlayout.Span(2), st.GridColumn)
	must.Eq(t, boxlayout.Lines(1, 3), st.GridRow)
}

func TestStyleSpecReportsEveryError(t *testing.T) {
	in := StyleSpec{
		Display:             "inline",
		Width:               "wide",
		Padding:             "1 2 3 4 5",
		Gap:                 "1 2 3",
		GridTemplateColumns: "repeat(x, 1fr)",
		GridRow:             "span",
	}

	_, err := in.Style()
	must.Error(t, err)

	var mErr *multierror.Error
	must.True(t, errors.As(err, &mErr))
	must.Len(t, 6, mErr.Errors)

	msg := err.Error()
	for _, field := range []string{"display:", "width:", "padding:", "gap:", "grid_template_columns:", "grid_row:"} {
		must.True(t, strings.Contains(msg, field), must.Sprintf("missing %q in %s", field, msg))
	}
}

func TestStyleSpecEmptyIsDefault(t *testing.T) {
	st, err := StyleSpec{}.Style()
	must.NoError(t, err)
	def := boxlayout.DefaultStyle()
	must.Eq(t, def.Display, st.Display)
	must.Eq(t, def.Width, st.Width)
	must.Eq(t, def.Margin, st.Margin)
	must.Eq(t, def.FlexShrink, st.FlexShrink)
	must.SliceEmpty(t, st.GridTemplateColumns)
}
