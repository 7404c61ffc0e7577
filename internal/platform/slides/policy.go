package slides

import (
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/events"
)

// Slide-count bounds supported by the generation service.
const (
	minSlides = 1
	maxSlides = 10
)

// enforceSlideCount clamps the requested slide count into [minSlides,
// maxSlides]. The clamp is total and monotonic: every integer maps to
// exactly one enforced value inside the range. Out-of-range requests return
// exactly one explanatory event recording the requested and enforced values;
// in-range requests (boundaries included) return a nil event.
func enforceSlideCount(requested int) (int, *events.Event) {
	switch {
	case requested > maxSlides:
		event := events.New(events.EventSlideLimitExceeded, map[string]any{
			"requested": requested,
			"enforced":  maxSlides,
		})
		return maxSlides, &event
	case requested < minSlides:
		event := events.New(events.EventSlideMinimumEnforced, map[string]any{
			"requested": requested,
			"enforced":  minSlides,
		})
		return minSlides, &event
	default:
		return requested, nil
	}
}
