package cli

import (
	"fmt"

	"github.com/arthur-debert/phint/internal/version"
	"github.com/arthur-debert/phint/pkg/cobrax/topics"
	"github.com/arthur-debert/phint/pkg/errors"
	"github.com/arthur-debert/phint/pkg/logging"
	"github.com/arthur-debert/phint/pkg/paths"
	"github.com/arthur-debert/phint/pkg/ui"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	groupPaths   = "paths"
	groupFiles   = "files"
	groupProject = "project"
	groupMisc    = "misc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		format     string
		configFile string
		topicsErr  error
	)

	rootCmd := &cobra.Command{
		Use:     "phint",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			if topicsErr != nil {
				log.Debug().Err(topicsErr).Msg("Help topics unavailable")
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.setup(cmd, configFile, format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(
		&cobra.Group{ID: groupPaths, Title: MsgGroupPaths},
		&cobra.Group{ID: groupFiles, Title: MsgGroupFiles},
		&cobra.Group{ID: groupProject, Title: MsgGroupProject},
		&cobra.Group{ID: groupMisc, Title: MsgGroupMisc},
	)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(
		newAbsCmd(a),
		newRelCmd(a),
		newExtCmd(a),
		newJoinCmd(a),
		newExpandCmd(a),
		newMkdirCmd(a),
		newReadCmd(a),
		newWriteCmd(a),
		newDataDirCmd(a),
		newBinsCmd(a),
		newFindCmd(a),
		newTypesCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
		newCompletionCmd(),
	)

	topicsErr = initTopics(a, rootCmd)

	return rootCmd
}

// initTopics serves the help topics found in the data directory's help/
// folder. Logging is not set up yet at this point, so a scan failure is
// returned for the caller to log later. The data directory is not created.
func initTopics(a *app, rootCmd *cobra.Command) error {
	helper := paths.New(paths.WithLogger(zerolog.Nop()))
	opts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(func() ui.Format { return a.format }),
	}
	err := topics.InitializeWithOptions(rootCmd, helper, helper.DataLocation("help"), opts)
	rootCmd.SetHelpCommandGroupID(groupMisc)
	return err
}

// Execute runs the root command and reports a failure on stderr. It returns
// the process exit code.
func Execute() int {
	a := &app{}
	return execute(a, newRootCmd(a))
}

func execute(a *app, rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	renderer, rerr := ui.NewRenderer(a.format, rootCmd.ErrOrStderr())
	if rerr != nil || renderer.RenderError(err) != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return 1
}
