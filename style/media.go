package style

import (
	"fmt"
	"strconv"
)

// Breakpoints are viewport widths in pixels. Rules are emitted as max-width
// queries in em, assuming a 16px browser default.
type Breakpoints struct {
	DesktopPx int
	TabletPx  int
	PhonePx   int
}

// DefaultBreakpoints returns the 992/768/576 pixel set.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{DesktopPx: 992, TabletPx: 768, PhonePx: 576}
}

// Query returns the media query for a width in pixels.
func Query(px int) string {
	em := strconv.FormatFloat(float64(px)/16, 'f', -1, 64)
	return fmt.Sprintf("@media (max-width: %sem)", em)
}

// Desktop wraps css so it applies at or below the desktop width.
func (b Breakpoints) Desktop(css string) string { return wrap(b.DesktopPx, css) }

// Tablet wraps css so it applies at or below the tablet width.
func (b Breakpoints) Tablet(css string) string { return wrap(b.TabletPx, css) }

// Phone wraps css so it applies at or below the phone width.
func (b Breakpoints) Phone(css string) string { return wrap(b.PhonePx, css) }

func wrap(px int, css string) string {
	return Query(px) + " {\n" + css + "\n}\n"
}
