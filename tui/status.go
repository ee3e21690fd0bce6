package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/cancelcore/cli"
	"github.com/nathoo/cancelcore/engine/fighter"
)

// usedMarks renders a used-bucket mask as one letter per bucket, with a dot
// for buckets still available.
func usedMarks(mask int, letters string) string {
	var b strings.Builder
	for i, r := range letters {
		if mask&(1<<i) != 0 {
			b.WriteRune(r)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// renderStatusBar produces a full-width inverted status line showing the
// current status, frame counters, used attacks and meter.
func (m Model) renderStatusBar() string {
	f := m.engine.Fighter

	length := "-"
	if l := m.engine.Defs.Move(f.Status).Length; l > 0 {
		length = fmt.Sprint(l)
	}
	left := fmt.Sprintf(" %s (%s) | %d/%s",
		cli.DisplayName(f.Status), fighter.SituationName(f.Sit),
		f.Int(fighter.IntStatusFrame), length)
	if t := f.Float(fighter.FloatCancelTimer); t > 0 {
		left += fmt.Sprintf(" | cancel %.0f", t)
	}

	right := fmt.Sprintf("Meter: %.0f | F:%d ", f.Float(fighter.FloatMeter), m.engine.Frame)

	// Show the used-attack marks when they fit.
	used := fmt.Sprintf("Used: %s %s | ",
		usedMarks(f.Int(fighter.IntUsedGroundNormals), "NSHLshl"),
		usedMarks(f.Int(fighter.IntUsedAerials), "NFBUD"))
	if lipgloss.Width(left)+lipgloss.Width(used+right)+2 < m.width {
		right = used + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
