package splice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMarkersNotFound reports a target without the expected marker pair.
var ErrMarkersNotFound = errors.New("splice: markers not found")

// Markers delimit a machine generated region of a source file. Both lines are
// part of the region and are expected to be re-emitted by the replacement.
type Markers struct {
	Start string
	End   string
}

var (
	// ServiceTriggers wraps the generated service catalog constant.
	ServiceTriggers = Markers{
		Start: "// === SYNC:SERVICE_TRIGGERS_START ===",
		End:   "// === SYNC:SERVICE_TRIGGERS_END ===",
	}

	// PricingGuide wraps the generated pricing guide template string.
	PricingGuide = Markers{
		Start: "// === SYNC:PRICING_GUIDE_START ===",
		End:   "// === SYNC:PRICING_GUIDE_END ===",
	}
)

// Wrap surrounds body with the marker lines.
func (m Markers) Wrap(body string) string {
	return m.Start + "\n" + body + "\n" + m.End
}

func (m Markers) String() string {
	return m.Start + " ... " + m.End
}

// Locate returns the byte range [start, end) of the first region, markers
// included.
func Locate(source string, m Markers) (int, int, error) {
	if m.Start == "" || m.End == "" {
		return 0, 0, errors.New("splice: start and end markers are required")
	}

	start := strings.Index(source, m.Start)
	if start < 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrMarkersNotFound, m)
	}
	rel := strings.Index(source[start+len(m.Start):], m.End)
	if rel < 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrMarkersNotFound, m)
	}
	end := start + len(m.Start) + rel + len(m.End)
	return start, end, nil
}

// Extract returns the first region, markers included.
func Extract(source string, m Markers) (string, error) {
	start, end, err := Locate(source, m)
	if err != nil {
		return "", err
	}
	return source[start:end], nil
}

// Replace swaps the first region delimited by m for block. The block is
// inserted literally.
func Replace(source string, m Markers, block string) (string, error) {
	start, end, err := Locate(source, m)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(source) - (end - start) + len(block))
	b.WriteString(source[:start])
	b.WriteString(block)
	b.WriteString(source[end:])
	return b.String(), nil
}
