// Package colormap resolves numeric metric values to display colors: a
// threshold bin table for SQM brightness readings, and min/max-normalized
// ramps for the categories without a bin table.
package colormap

import (
	"fmt"
	"math"
	"sort"
)

// Bin is one (threshold, color) pair of an ordered bin table.
type Bin struct {
	Threshold float64 `json:"threshold"`
	Color     string  `json:"color"`
}

// Table is an ordered threshold-to-color lookup. Thresholds are strictly
// increasing; NewTable enforces this.
type Table struct {
	bins []Bin
}

// NewTable validates and builds a bin table.
func NewTable(bins []Bin) (Table, error) {
	if len(bins) == 0 {
		return Table{}, fmt.Errorf("colormap: empty bin table")
	}
	for i := 1; i < len(bins); i++ {
		if bins[i].Threshold <= bins[i-1].Threshold {
			return Table{}, fmt.Errorf("colormap: thresholds not strictly increasing at index %d (%v <= %v)",
				i, bins[i].Threshold, bins[i-1].Threshold)
		}
	}
	out := make([]Bin, len(bins))
	copy(out, bins)
	return Table{bins: out}, nil
}

// Len returns the number of bins.
func (t Table) Len() int { return len(t.bins) }

// Lookup returns the color of the smallest threshold strictly greater than
// v. A value equal to a threshold belongs to the next bin up; values at or
// above the top threshold saturate to the last bin's color.
//
// v must be a real number: the caller excludes missing values before
// resolving colors.
func (t Table) Lookup(v float64) string {
	i := sort.Search(len(t.bins), func(i int) bool {
		return t.bins[i].Threshold > v
	})
	if i == len(t.bins) {
		i = len(t.bins) - 1
	}
	return t.bins[i].Color
}

// DivergingRamp maps v within [min, max] to a green-to-red color, green at
// the low end. Used for the trend-rate category where low means recovering
// and high means degrading.
func DivergingRamp(v, min, max float64) string {
	s := scale(v, min, max)
	return fmt.Sprintf("rgba(%d, %d, %d, 1)", s, 255-s, s)
}

// MonoRamp maps v within [min, max] to a black-to-magenta color.
func MonoRamp(v, min, max float64) string {
	s := scale(v, min, max)
	return fmt.Sprintf("rgba(%d, 0, %d, 1)", s, s)
}

// scale normalizes v into 0..255. A degenerate range maps everything to 0.
func scale(v, min, max float64) int {
	if max <= min {
		return 0
	}
	s := int(math.Round(255 * (v - min) / (max - min)))
	if s < 0 {
		s = 0
	}
	if s > 255 {
		s = 255
	}
	return s
}
