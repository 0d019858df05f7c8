// Package layout implements a pure-Go box layout engine following the CSS
// flexbox, grid and block formatting algorithms.
//
// It supports all four flex directions with wrapping, justify and align
// modes, auto margins, gaps, min/max constraints, aspect ratios, percentage
// and calc() dimensions, explicit and implicit grids with auto-placement and
// fr tracks, block flow with margin collapsing, absolute positioning and
// intrinsic (min-content/max-content) sizing. Types are re-exported through
// the root boxlayout package for public consumption.
//
// The engine never owns nodes. Callers implement [Tree] and drive layout
// through [ComputeRootLayout], which writes an unrounded [Layout] for every
// node via Tree.SetLayout. Locations are relative to the parent's border box.
// Each node carries a [Cache] so repeated measurement of the same subtree
// under the same constraints is free.
package layout
