package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/expresskit/create-express/internal/branding"
	"github.com/expresskit/create-express/internal/config"
	"github.com/expresskit/create-express/internal/create"
	"github.com/expresskit/create-express/internal/logger"
	"github.com/expresskit/create-express/internal/prompt"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

type createFlags struct {
	template  string
	overwrite bool
}

func newRootCmd() *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:           branding.CLIName() + " [DIRECTORY]",
		Short:         branding.Description(),
		Args:          cobra.MaximumNArgs(1),
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.template, "template", "t", "", "use a specific template")
	cmd.Flags().BoolVar(&flags.overwrite, "overwrite", false, "remove existing files in DIRECTORY without asking")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), helpMessage())
	})
	cmd.SetVersionTemplate(versionTemplate())

	return cmd
}

func runCreate(cmd *cobra.Command, args []string, flags *createFlags) error {
	settings := config.Load()
	if settings.NoColor {
		color.NoColor = true
	}

	var dir string
	if len(args) > 0 {
		dir = args[0]
	}

	console := prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	runner := &create.Runner{
		UI:  console,
		Log: logger.New(cmd.ErrOrStderr(), settings.LogLevel, settings.NoColor),
	}

	_, err := runner.Run(create.Options{
		Dir:       dir,
		Template:  flags.template,
		Overwrite: flags.overwrite,
		UserAgent: settings.UserAgent,
	})
	return err
}

// Execute runs the root command with build info injected via ldflags.
// Failures are reported on stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := newRootCmd().Execute()
	if err != nil {
		settings := config.Load()
		logger.New(os.Stderr, settings.LogLevel, settings.NoColor).Errorf("%v", err)
	}
	return err
}
