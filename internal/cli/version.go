package cli

import "github.com/expresskit/create-express/internal/branding"

func versionTemplate() string {
	return branding.CLIName() + " version {{.Version}} (commit: " + buildCommit + ", built: " + buildDate + ")\n"
}
