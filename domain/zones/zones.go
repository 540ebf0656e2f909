package zones

import (
	"fmt"
	"sync/atomic"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/geometry"
)

// DefaultColor is assigned to zones created without an explicit display color.
const DefaultColor = "#ff0000"

// Zone is an axis-aligned exclusion rectangle in frame pixel space plus a
// display color tag. Coordinates are always canonical (X1 <= X2, Y1 <= Y2).
type Zone struct {
	X1, Y1, X2, Y2 int
	Color          string
}

// New canonicalizes the corner pair regardless of drag direction and applies
// the default color when none is given.
func New(x1, y1, x2, y2 int, color string) Zone {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	if color == "" {
		color = DefaultColor
	}
	return Zone{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: color}
}

// Contains reports whether the point lies inside the zone, bounds inclusive.
func (z Zone) Contains(px, py int) bool {
	return geometry.RectContains(z.X1, z.Y1, z.X2, z.Y2, px, py)
}

func (z Zone) String() string {
	return fmt.Sprintf("(%d,%d) to (%d,%d)", z.X1, z.Y1, z.X2, z.Y2)
}

// Set is an ordered collection of exclusion zones shared between the UI
// (writer) and the capture pipeline (reader). Writers replace the backing
// slice wholesale so Snapshot never observes a partial update.
type Set struct {
	zones atomic.Pointer[[]Zone]
}

// NewSet returns a zone set seeded with the given zones; nil means empty.
func NewSet(zs []Zone) *Set {
	s := &Set{}
	s.Replace(zs)
	return s
}

// Snapshot returns the current zone list. The returned slice is immutable;
// callers must not modify it.
func (s *Set) Snapshot() []Zone {
	return *s.zones.Load()
}

// Len reports the number of zones.
func (s *Set) Len() int { return len(s.Snapshot()) }

// Add appends a zone, preserving insertion order.
func (s *Set) Add(z Zone) {
	cur := s.Snapshot()
	next := make([]Zone, len(cur)+1)
	copy(next, cur)
	next[len(cur)] = z
	s.zones.Store(&next)
}

// Replace swaps in a whole new zone list.
func (s *Set) Replace(zs []Zone) {
	next := make([]Zone, len(zs))
	copy(next, zs)
	s.zones.Store(&next)
}

// Clear removes all zones.
func (s *Set) Clear() {
	empty := []Zone{}
	s.zones.Store(&empty)
}
