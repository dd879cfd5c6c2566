package cli

import (
	"github.com/arthur-debert/phint/pkg/paths"
	"github.com/spf13/cobra"
)

func newFindCmd(a *app) *cobra.Command {
	var (
		ext      string
		dotfiles bool
	)

	cmd := &cobra.Command{
		Use:     "find DIR...",
		Short:   MsgFindShort,
		Long:    MsgFindLong,
		GroupID: groupProject,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.helper.FindFiles(args, ext, dotfiles)
			if err != nil {
				return err
			}
			return a.renderList(files)
		},
	}

	cmd.Flags().StringVarP(&ext, "ext", "e", paths.AnyExtension, MsgFlagExt)
	cmd.Flags().BoolVar(&dotfiles, "dotfiles", false, MsgFlagDotfiles)
	return cmd
}

func newTypesCmd(a *app) *cobra.Command {
	var (
		namespaces []string
		ext        string
	)

	cmd := &cobra.Command{
		Use:     "types DIR...",
		Short:   MsgTypesShort,
		Long:    MsgTypesLong,
		Example: MsgTypesExample,
		GroupID: groupProject,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.helper.LoadTypes(args, namespaces, ext)
			if err != nil {
				return err
			}
			return a.renderList(names)
		},
	}

	cmd.Flags().StringArrayVarP(&namespaces, "ns", "n", nil, MsgFlagNS)
	cmd.Flags().StringVarP(&ext, "ext", "e", "", MsgFlagTypesExt)
	return cmd
}
