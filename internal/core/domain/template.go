package domain

import "strings"

const (
	// PlaceholderOut is replaced by the target's output.
	PlaceholderOut = "#OUT"
	// PlaceholderDepends is replaced by the explicit dependencies joined with a space.
	PlaceholderDepends = "#DEPENDS"
)

// RenderCommand substitutes every placeholder in template.
// #DEPENDS is expanded first, so a dependency path containing "#OUT" is
// expanded again. Paths are not escaped.
func RenderCommand(template, output string, explicit []string) string {
	command := strings.ReplaceAll(template, PlaceholderDepends, strings.Join(explicit, " "))
	return strings.ReplaceAll(command, PlaceholderOut, output)
}
