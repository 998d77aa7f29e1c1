package styles_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockit/internal/cli/styles"
)

func TestPerspectiveTabs_Navigation(t *testing.T) {
	tabs := styles.NewPerspectiveTabs(styles.NewTheme(), "coding", "debug", "review")

	assert.Equal(t, "coding", tabs.Current())
	tabs.Prev()
	assert.Equal(t, "review", tabs.Current())
	tabs.Next()
	tabs.Next()
	assert.Equal(t, "debug", tabs.Current())

	assert.True(t, tabs.Select("review"))
	assert.False(t, tabs.Select("missing"))
	assert.Equal(t, "review", tabs.Current())
}

func TestPerspectiveTabs_Empty(t *testing.T) {
	tabs := styles.NewPerspectiveTabs(styles.NewTheme())

	tabs.Next()
	tabs.Prev()

	assert.Empty(t, tabs.Current())
	assert.Contains(t, tabs.View(40), "no perspectives")
}

func TestPerspectiveTabs_ViewFitsWidth(t *testing.T) {
	tabs := styles.NewPerspectiveTabs(styles.NewTheme(),
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel")
	tabs.Select("echo")
	tabs.Opened = "echo"

	view := tabs.View(30)

	assert.LessOrEqual(t, lipgloss.Width(view), 30)
	assert.Contains(t, view, "echo")
	assert.Contains(t, view, styles.IconStar)
	assert.Contains(t, view, "…")
	assert.NotContains(t, view, "alpha", "tabs far from the selection are cut")
}
