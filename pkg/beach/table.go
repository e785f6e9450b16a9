package beach

import "strings"

// GrainSize is a median sediment grain diameter bucket in micrometers.
type GrainSize string

const (
	GrainVeryCoarse GrainSize = ">710"
	GrainCoarse     GrainSize = "500-710"
	GrainMedium     GrainSize = "350-500"
	GrainMediumFine GrainSize = "250-350"
	GrainFine       GrainSize = "180-250"
	GrainVeryFine   GrainSize = "<180"
)

var (
	// GrainSizes lists the buckets ordered coarse to fine.
	GrainSizes = []GrainSize{
		GrainVeryCoarse,
		GrainCoarse,
		GrainMedium,
		GrainMediumFine,
		GrainFine,
		GrainVeryFine,
	}

	// SlopeCategories lists the beach face ratios, steep to flat.
	// ScoreTable rows are indexed by position in this list.
	SlopeCategories = []string{"1/5", "1/10", "1/20", "1/30", "1/50", "1/100"}
)

// ParseGrainSize returns the bucket matching s. Unknown values are returned
// as-is so the caller can still score them (with a zero table contribution).
func ParseGrainSize(s string) (GrainSize, bool) {
	g := GrainSize(strings.TrimSpace(s))
	for _, v := range GrainSizes {
		if v == g {
			return g, true
		}
	}
	return g, false
}

func slopeIndex(slope string) int {
	slope = strings.TrimSpace(slope)
	for i, v := range SlopeCategories {
		if v == slope {
			return i
		}
	}
	return -1
}

// ScoreTable maps a grain bucket to its per-slope-category contribution.
type ScoreTable map[GrainSize][]int

// DefaultScoreTable returns a fresh copy of the canonical grain/slope table.
// The medium-fine row at slope 1/20 contributes 4, so the dashboard's initial
// survey scores 11 (exposed). Use a custom table in Profile to change it.
func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		GrainVeryCoarse: {5, 6, 7, 7, 7, 7},
		GrainCoarse:     {4, 5, 6, 6, 7, 7},
		GrainMedium:     {3, 4, 5, 5, 6, 6},
		GrainMediumFine: {2, 3, 4, 4, 5, 5},
		GrainFine:       {1, 2, 3, 3, 4, 4},
		GrainVeryFine:   {0, 0, 1, 1, 2, 2},
	}
}

// Lookup returns the contribution for the grain/slope pair.
// Undefined pairs yield (0, false).
func (t ScoreTable) Lookup(grain GrainSize, slope string) (int, bool) {
	row, ok := t[grain]
	if !ok {
		return 0, false
	}
	i := slopeIndex(slope)
	if i < 0 || i >= len(row) {
		return 0, false
	}
	return row[i], true
}

// Max returns the largest contribution in the table.
func (t ScoreTable) Max() int {
	m := 0
	for _, row := range t {
		for _, v := range row {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// Clone returns a deep copy of the table.
func (t ScoreTable) Clone() ScoreTable {
	c := make(ScoreTable, len(t))
	for k, row := range t {
		c[k] = append([]int(nil), row...)
	}
	return c
}

// Diameters maps a grain bucket to a representative median diameter (mm).
type Diameters map[GrainSize]float64

// DefaultDiameters returns a fresh copy of the canonical diameter lookup.
func DefaultDiameters() Diameters {
	return Diameters{
		GrainVeryCoarse: 0.71,
		GrainCoarse:     0.6,
		GrainMedium:     0.43,
		GrainMediumFine: 0.3,
		GrainFine:       0.215,
		GrainVeryFine:   0.15,
	}
}

// Clone returns a copy of the lookup.
func (d Diameters) Clone() Diameters {
	c := make(Diameters, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}
