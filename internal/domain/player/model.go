package player

import "strings"

// Position represents football position categories used in fantasy rules.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Label returns the long position name.
func (p Position) Label() string {
	switch p {
	case PositionGoalkeeper:
		return "Goalkeeper"
	case PositionDefender:
		return "Defender"
	case PositionMidfielder:
		return "Midfielder"
	case PositionForward:
		return "Forward"
	default:
		return string(p)
	}
}

// ParsePosition maps free-text position descriptions to a category.
// Unrecognised text falls back to forward and reports ok=false.
func ParsePosition(value string) (pos Position, ok bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if _, known := AllPositions[Position(strings.ToUpper(v))]; known {
		return Position(strings.ToUpper(v)), true
	}

	switch {
	case strings.Contains(v, "goalkeeper"), v == "keeper":
		return PositionGoalkeeper, true
	case strings.Contains(v, "defender"), strings.Contains(v, "back"):
		return PositionDefender, true
	case strings.Contains(v, "midfield"):
		return PositionMidfielder, true
	case strings.Contains(v, "forward"), strings.Contains(v, "striker"), strings.Contains(v, "winger"):
		return PositionForward, true
	default:
		return PositionForward, false
	}
}
