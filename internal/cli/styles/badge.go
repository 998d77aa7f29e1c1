package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/dockit/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

var featureLabels = []struct {
	feature entity.DockWidgetFeature
	label   string
}{
	{entity.DockWidgetClosable, "closable"},
	{entity.DockWidgetMovable, "movable"},
	{entity.DockWidgetFloatable, "floatable"},
	{entity.DockWidgetPinnable, "pinnable"},
}

// FeatureBadges renders one muted badge per enabled feature of f.
func (t *Theme) FeatureBadges(f entity.DockWidgetFeature) string {
	var out []string
	for _, fl := range featureLabels {
		if f&fl.feature != 0 {
			out = append(out, t.MutedBadge(fl.label))
		}
	}
	return strings.Join(out, " ")
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	diff := time.Since(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}
