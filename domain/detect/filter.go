package detect

import (
	"errors"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/samber/lo"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/zones"
)

// ErrInvalidThreshold reports a confidence threshold outside [0, 1].
var ErrInvalidThreshold = errors.New("confidence threshold must be between 0 and 1")

// DefaultThreshold is the stock confidence cutoff. Higher values are more
// selective.
const DefaultThreshold = 0.5

// Filter classifies raw detections against the exclusion-zone set. The
// threshold is written by the UI and read by the capture-side pipeline, so
// it is stored as an atomic float snapshot.
type Filter struct {
	threshold atomic.Uint64 // math.Float64bits
	logger    *slog.Logger
}

// NewFilter constructs a filter with the given threshold; out-of-range
// values fall back to DefaultThreshold.
func NewFilter(threshold float64, logger *slog.Logger) *Filter {
	f := &Filter{logger: logger}
	if f.SetConfidenceThreshold(threshold) != nil {
		f.threshold.Store(math.Float64bits(DefaultThreshold))
	}
	return f
}

// SetConfidenceThreshold validates 0 <= v <= 1 and rejects out-of-range
// values without mutating state.
func (f *Filter) SetConfidenceThreshold(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return ErrInvalidThreshold
	}
	f.threshold.Store(math.Float64bits(v))
	return nil
}

// ConfidenceThreshold returns the current threshold.
func (f *Filter) ConfidenceThreshold() float64 {
	return math.Float64frombits(f.threshold.Load())
}

// Classify runs the stored threshold against raw detections and the given
// zone snapshot.
func (f *Filter) Classify(raw []RawDetection, zs []zones.Zone) Outcome {
	return Classify(raw, f.ConfidenceThreshold(), zs)
}

// Classify filters raw detections to those with confidence strictly above
// threshold, then marks each as in-zone when its box center falls inside any
// zone (inclusive bounds, insertion order, first match wins). A detection
// suppressed by a zone still counts toward AnyDetected and MaxConfidence;
// only non-excluded detections make the outcome actionable.
func Classify(raw []RawDetection, threshold float64, zs []zones.Zone) Outcome {
	surviving := lo.Filter(raw, func(d RawDetection, _ int) bool {
		return d.Confidence > threshold
	})

	out := Outcome{Classified: make([]ClassifiedDetection, 0, len(surviving))}
	for _, d := range surviving {
		cx, cy := d.Center()
		excluded := false
		for _, z := range zs {
			if z.Contains(cx, cy) {
				excluded = true
				break
			}
		}
		out.Classified = append(out.Classified, ClassifiedDetection{RawDetection: d, InExclusionZone: excluded})
		out.AnyDetected = true
		if d.Confidence > out.MaxConfidence {
			out.MaxConfidence = d.Confidence
		}
		if !excluded {
			out.ActionableDetected = true
		}
	}
	return out
}
