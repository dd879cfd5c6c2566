package cli

import (
	"github.com/arthur-debert/phint/pkg/paths"
	"github.com/spf13/cobra"
)

func newAbsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "abs PATH",
		Short:   MsgAbsShort,
		GroupID: groupPaths,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderer.RenderResult(paths.IsAbsolute(args[0]))
		},
	}
}

func newRelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rel PATH BASE...",
		Short:   MsgRelShort,
		GroupID: groupPaths,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderer.RenderResult(paths.RelativePath(args[0], args[1:]...))
		},
	}
}

func newExtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ext PATH",
		Short:   MsgExtShort,
		GroupID: groupPaths,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderer.RenderResult(paths.Extension(args[0]))
		},
	}
}

func newJoinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "join SEGMENT...",
		Short:   MsgJoinShort,
		GroupID: groupPaths,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderer.RenderResult(paths.Join(args...))
		},
	}
}

func newExpandCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:     "expand PATH",
		Short:   MsgExpandShort,
		Long:    MsgExpandLong,
		Example: MsgExpandExample,
		GroupID: groupPaths,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderer.RenderResult(a.helper.Expand(args[0], from))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", MsgFlagFrom)
	return cmd
}
