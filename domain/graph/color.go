package graph

import (
	"fmt"
	"strconv"
)

// palette holds the pastel fills assigned to subject labels. Assignment is a
// stable hash of the label, so the same subject always renders the same color.
var palette = []string{
	"#f8e8e8",
	"#fde4ec",
	"#ffe8e0",
	"#fff4da",
	"#f5f2d8",
	"#eaf7d5",
	"#dbf1e4",
	"#e5f6f9",
	"#e6f0ff",
	"#ece5ff",
	"#efe6f5",
	"#f7e8ef",
	"#f0f7ff",
	"#e8fff4",
	"#fff0f0",
	"#f4f9e8",
}

// neutralFill is used for entities without a dominant subject
const neutralFill = "#f0f0f0"

// borderDarkenFactor scales each fill channel to produce the border color
const borderDarkenFactor = 0.82

// hashLabel computes a 32-bit multiplicative hash (h = 31*h + ch) with
// wraparound over the label's code points.
func hashLabel(label string) int32 {
	var h int32
	for _, r := range label {
		h = 31*h + int32(r)
	}
	return h
}

// fillForSubject maps a dominant subject label onto the palette
func fillForSubject(subject *string) string {
	if subject == nil || *subject == "" {
		return neutralFill
	}
	idx := int(hashLabel(*subject))
	if idx < 0 {
		idx = -idx
	}
	return palette[idx%len(palette)]
}

// borderFor darkens a #rrggbb fill into its border variant
func borderFor(fill string) string {
	r := darkenChannel(fill[1:3])
	g := darkenChannel(fill[3:5])
	b := darkenChannel(fill[5:7])
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func darkenChannel(hexPair string) int {
	v, err := strconv.ParseUint(hexPair, 16, 16)
	if err != nil {
		return 0
	}
	return int(float64(v) * borderDarkenFactor)
}
