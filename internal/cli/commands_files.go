package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/phint/pkg/errors"
	"github.com/arthur-debert/phint/pkg/jsonc"
	"github.com/arthur-debert/phint/pkg/paths"
	"github.com/spf13/cobra"
)

func newMkdirCmd(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:     "mkdir DIR...",
		Short:   MsgMkdirShort,
		GroupID: groupFiles,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perm := a.helper.Config().Modes.Dir
			if mode != "" {
				if err := perm.UnmarshalText([]byte(mode)); err != nil {
					return errors.Wrapf(err, errors.ErrInvalidInput, "invalid mode %q", mode)
				}
			}

			for _, dir := range args {
				if err := a.helper.EnsureDirMode(dir, perm.Perm()); err != nil {
					return err
				}
			}
			return a.renderList(args)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", MsgFlagMode)
	return cmd
}

func newReadCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "read FILE",
		Short:   MsgReadShort,
		GroupID: groupFiles,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]

			if asJSON {
				value, err := a.helper.ReadJSON(file)
				if err != nil {
					return err
				}
				return a.renderer.RenderResult(value)
			}

			content, ok := a.helper.Read(file)
			if !ok {
				return errors.Newf(errors.ErrFileNotFound, MsgFileUnreadable, file).
					WithDetail("path", file)
			}
			if a.format.Structured() {
				return a.renderer.RenderResult(content)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, MsgFlagReadJSON)
	return cmd
}

func newWriteCmd(a *app) *cobra.Command {
	var (
		asJSON     bool
		appendMode bool
	)

	cmd := &cobra.Command{
		Use:     "write FILE CONTENT",
		Short:   MsgWriteShort,
		Long:    MsgWriteLong,
		Example: MsgWriteExample,
		GroupID: groupFiles,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, content := args[0], args[1]

			if content == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, errors.ErrFileAccess, "cannot read standard input")
				}
				content = string(data)
			}

			var value interface{} = content
			if asJSON {
				decoded, err := jsonc.DecodeValue([]byte(content))
				if err != nil {
					return err
				}
				encoded, err := jsonc.Encode(decoded)
				if err != nil {
					return err
				}
				value = encoded
			}

			var opts []paths.WriteOption
			if appendMode {
				opts = append(opts, paths.WithAppend())
			}
			if err := a.helper.WriteFile(file, value, opts...); err != nil {
				return err
			}

			a.logger.Info().Str("path", file).Bool("append", appendMode).Msg("File written")
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, MsgFlagJSON)
	cmd.Flags().BoolVarP(&appendMode, "append", "a", false, MsgFlagAppend)
	return cmd
}

func newDataDirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "datadir [SUBPATH]",
		Short:   MsgDataDirShort,
		GroupID: groupFiles,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.helper.DataPath(args...)
			if path == "" {
				return errors.New(errors.ErrNotFound, MsgDataDirMissing)
			}
			return a.renderer.RenderResult(path)
		},
	}
}

func newBinsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "bins BASE NAME...",
		Short:   MsgBinsShort,
		Long:    MsgBinsLong,
		GroupID: groupFiles,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, names := args[0], args[1:]
			if err := a.helper.CreateBinaries(names, base); err != nil {
				return err
			}

			created := make([]string, 0, len(names))
			for _, name := range names {
				created = append(created, paths.Join(base, name))
			}
			return a.renderList(created)
		},
	}
}
