package imgreorder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/imgreorder/internal/version"
	"github.com/arthur-debert/imgreorder/pkg/commands"
	"github.com/arthur-debert/imgreorder/pkg/config"
	"github.com/arthur-debert/imgreorder/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newListCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "list <folder>",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := state.renderer(cmd)
			if err != nil {
				return err
			}

			log.Info().Str("folder", args[0]).Msg("Listing images")

			result, err := commands.ListImages(commands.ListImagesOptions{Folder: args[0]})
			if err != nil {
				return fmt.Errorf(MsgErrList, err)
			}

			return renderer.RenderResult(result)
		},
	}
}

func newReorderCmd(state *appState) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "reorder <folder> [files...]",
		Short:   MsgReorderShort,
		Long:    MsgReorderLong,
		Example: MsgReorderExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := state.renderer(cmd)
			if err != nil {
				return err
			}

			folder := args[0]
			files := args[1:]
			if len(files) == 0 {
				listed, err := commands.ListImages(commands.ListImagesOptions{Folder: folder})
				if err != nil {
					return fmt.Errorf(MsgErrReorder, err)
				}
				files = listed.Files
			}

			log.Info().
				Str("folder", folder).
				Int("fileCount", len(files)).
				Bool("dryRun", dryRun).
				Msg("Reordering images")

			opts := commands.ReorderOptions{
				Folder: folder,
				Files:  files,
			}

			var result *types.ReorderResult
			if dryRun {
				result, err = commands.PlanReorder(opts)
			} else {
				progress := newCopyProgress(cmd.ErrOrStderr(), len(files), state.cfg.Output.Progress)
				opts.OnCopied = progress.onCopied
				result, err = commands.ReorderAndMaterialize(opts)
				progress.stop()
			}
			if err != nil {
				return fmt.Errorf(MsgErrReorder, err)
			}

			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)

	return cmd
}

func newPreviewCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "preview <folder>",
		Short:   MsgPreviewShort,
		Long:    MsgPreviewLong,
		Example: MsgPreviewExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := state.renderer(cmd)
			if err != nil {
				return err
			}

			listed, err := commands.ListImages(commands.ListImagesOptions{Folder: args[0]})
			if err != nil {
				return fmt.Errorf(MsgErrPreview, err)
			}

			result, err := commands.PlanReorder(commands.ReorderOptions{
				Folder: args[0],
				Files:  listed.Files,
			})
			if err != nil {
				return fmt.Errorf(MsgErrPreview, err)
			}

			return renderer.RenderResult(result)
		},
	}
}

func newGenConfigCmd(state *appState) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := config.DefaultConfigPath()
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf(MsgErrGenConfig, fmt.Errorf(MsgConfigExists, path))
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}

			renderer, err := state.renderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, path))
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

// manHeader is shared by the man command and the imgreorder-manpage tool.
func manHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "IMGREORDER",
		Section: "1",
		Source:  "imgreorder " + version.Version,
		Manual:  "imgreorder manual",
	}
}

// GenManPage writes the man page of the root command to w.
func GenManPage(root *cobra.Command, w io.Writer) error {
	return doc.GenMan(root, manHeader(), w)
}

func newManCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "man <dir>",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.ExactArgs(1),
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(args[0], 0755); err != nil {
				return fmt.Errorf(MsgErrMan, err)
			}
			if err := doc.GenManTree(cmd.Root(), manHeader(), args[0]); err != nil {
				return fmt.Errorf(MsgErrMan, err)
			}
			renderer, err := state.renderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgManWritten, args[0]))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}
