package cli

import (
	"fmt"
	"strings"

	"github.com/expresskit/create-express/internal/branding"
	"github.com/expresskit/create-express/internal/catalog"
	"github.com/expresskit/create-express/internal/config"
)

func helpMessage() string {
	var b strings.Builder
	fmt.Fprintf(&b, `%s

Usage: %s [OPTION] [DIRECTORY]

Create a new Express API project.
With no arguments, start the CLI in interactive mode.

Options:
  -t, --template NAME       use a specific template
      --overwrite           remove existing files in DIRECTORY without asking
  -h, --help                show this help
  -v, --version             print version information

Environment:
  %-25s one of trace, debug, info, warn, error
  %-25s disable colour output

Available templates:
`, branding.DisplayName(), branding.CLIName(),
		branding.EnvVar(config.KeyLogLevel), branding.EnvVar(config.KeyNoColor))

	for _, t := range catalog.List() {
		b.WriteString(t.Accent.Paint(t.ID))
		b.WriteString("\n")
	}
	return b.String()
}
