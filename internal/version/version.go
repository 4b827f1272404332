package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Build metadata, overridable via -ldflags "-X jpath/internal/version.GitCommit=...".
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	GitCommit = ""
	// GitMessage is an optional git commit message.
	GitMessage = ""
	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders Version with each numeric part in its own colour.
// Without colour support it returns Version unchanged.
func Colored(enabled bool) string {
	if !enabled {
		return Version
	}
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	paint := func(s string, attrs ...color.Attribute) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.Sprint(s)
	}
	out := paint(parts[0], color.FgYellow, color.Bold) + "." +
		paint(parts[1], color.FgGreen, color.Bold) + "." +
		paint(parts[2], color.FgBlue, color.Bold)
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Info is the text printed by `jpath version`.
func Info(colored bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "jpath %s\n", Colored(colored))
	if GitCommit != "" {
		fmt.Fprintf(&sb, "commit: %s", GitCommit)
		if GitMessage != "" {
			fmt.Fprintf(&sb, " (%s)", GitMessage)
		}
		sb.WriteByte('\n')
	}
	if BuildDate != "" {
		fmt.Fprintf(&sb, "built:  %s\n", BuildDate)
	}
	return sb.String()
}
