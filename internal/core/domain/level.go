package domain

// Level is one step of the ordered performance/potential scale.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// IsValid reports whether l is one of the known scale values.
func (l Level) IsValid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// DonutCenter is the neutral donut sub-position. An employee parked at the
// center has not been moved on the donut axis.
const DonutCenter = 5

// gridPositions is the fixed (performance, potential) -> grid position table.
// Positions run 1-9: performance selects the band, potential the slot within
// it, so (HIGH, MEDIUM) lands on 8 and (LOW, LOW) on 1.
var gridPositions = map[Level]map[Level]int{
	LevelLow:    {LevelLow: 1, LevelMedium: 2, LevelHigh: 3},
	LevelMedium: {LevelLow: 4, LevelMedium: 5, LevelHigh: 6},
	LevelHigh:   {LevelLow: 7, LevelMedium: 8, LevelHigh: 9},
}

// GridPositionFor returns the 1-9 grid position for a (performance,
// potential) pair, or 0 if either level is invalid.
func GridPositionFor(performance, potential Level) int {
	row, ok := gridPositions[performance]
	if !ok {
		return 0
	}
	return row[potential]
}
