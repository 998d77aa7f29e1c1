package styles

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var quotedHexColor = regexp.MustCompile(`^['"](#[0-9a-fA-F]{6})['"]$`)

// ConfigRenderer renders the output of the config commands.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

func (r *ConfigRenderer) header(icon string, color lipgloss.Color, text string) string {
	return fmt.Sprintf("\n  %s %s", lipgloss.NewStyle().Foreground(color).Render(icon), text)
}

// RenderConfig renders the config path and the effective TOML body.
// Theme colors get a swatch next to their value.
func (r *ConfigRenderer) RenderConfig(path string, body []byte) string {
	var sb strings.Builder
	sb.WriteString(r.header(IconConfig, r.theme.Accent, "Config "+r.theme.Subtle.Render(path)))
	sb.WriteString("\n\n")

	for line := range strings.Lines(string(body)) {
		line = strings.TrimSpace(line)
		key, value, isPair := strings.Cut(line, "=")
		switch {
		case line == "":
			sb.WriteString("\n")
		case strings.HasPrefix(line, "#"):
			sb.WriteString("  " + r.theme.Subtle.Render(line) + "\n")
		case strings.HasPrefix(line, "["):
			sb.WriteString("  " + r.theme.Subtitle.Render(line) + "\n")
		case isPair:
			value = strings.TrimSpace(value)
			rendered := r.theme.Normal.Render(value)
			if m := quotedHexColor.FindStringSubmatch(value); m != nil {
				rendered += " " + lipgloss.NewStyle().Background(lipgloss.Color(m[1])).Render("  ")
			}
			sb.WriteString(fmt.Sprintf("    %s = %s\n", r.theme.Highlight.Render(strings.TrimSpace(key)), rendered))
		default:
			sb.WriteString("    " + r.theme.Normal.Render(line) + "\n")
		}
	}
	return sb.String()
}

// RenderSchemaWritten confirms where the JSON schema went.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return r.header(IconCheck, r.theme.Accent, "Schema written to "+r.theme.Subtle.Render(path)) + "\n"
}

func (r *ConfigRenderer) RenderError(err error) string {
	return r.header(IconX, r.theme.Error, fmt.Sprintf("Config error: %v", err)) + "\n"
}

// RenderNoConfigFile notes that path does not exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	return r.header(IconConfig, r.theme.Accent, "Config "+r.theme.Subtle.Render(path)) +
		"\n  " + r.theme.Subtle.Render("Config file will be created on first run with all defaults.") + "\n"
}
