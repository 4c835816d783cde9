package imgreorder

import (
	"fmt"
	"io"

	"github.com/arthur-debert/imgreorder/internal/version"
	"github.com/arthur-debert/imgreorder/pkg/config"
	"github.com/arthur-debert/imgreorder/pkg/logging"
	"github.com/arthur-debert/imgreorder/pkg/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// appState carries what PersistentPreRunE resolved to the subcommands.
type appState struct {
	cfg *config.Config
}

// format resolves the configured output format. Plain text with color
// enabled means "rich when writing to a terminal". Before the config is
// loaded it is always Auto.
func (s *appState) format() (ui.Format, error) {
	if s.cfg == nil {
		return ui.FormatAuto, nil
	}
	format, err := ui.ParseFormat(s.cfg.Output.Format)
	if err != nil {
		return ui.FormatAuto, err
	}
	if format == ui.FormatText && s.cfg.Output.Color {
		format = ui.FormatAuto
	}
	return format, nil
}

// renderer builds the output renderer for cmd from the resolved config.
func (s *appState) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := s.format()
	if err != nil {
		return nil, fmt.Errorf(MsgErrRenderer, err)
	}
	r, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, fmt.Errorf(MsgErrRenderer, err)
	}
	return r, nil
}

// renderError reports err on w in the configured format, falling back to
// the styled text form.
func (s *appState) renderError(w io.Writer, err error) {
	format, ferr := s.format()
	if ferr != nil {
		format = ui.FormatAuto
	}
	r, rerr := ui.NewRenderer(format, w)
	if rerr == nil {
		rerr = r.RenderError(err)
	}
	if rerr != nil {
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// Execute runs the command line and reports a failure on stderr through
// the configured renderer. It returns the process exit code.
func Execute() int {
	rootCmd, state := newRootCmd()
	return run(rootCmd, state)
}

func run(rootCmd *cobra.Command, state *appState) int {
	if err := rootCmd.Execute(); err != nil {
		state.renderError(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

func newRootCmd() (*cobra.Command, *appState) {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
		format     string
		noColor    bool
	)
	state := &appState{}

	rootCmd := &cobra.Command{
		Use:     "imgreorder",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("format") {
				overrides["output.format"] = format
			}
			if noColor {
				overrides["output.color"] = false
			}

			cfg, err := config.Load(config.LoadOptions{
				ConfigFile: configFile,
				Overrides:  overrides,
			})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			state.cfg = cfg

			// Setup logging based on verbosity
			logging.SetupLogger(logging.Options{
				Verbosity: verbosity,
				LogToFile: cfg.Logging.File,
				NoColor:   !cfg.Output.Color,
				Console:   cmd.ErrOrStderr(),
			})
			if !cfg.Output.Color {
				lipgloss.SetColorProfile(termenv.Ascii)
				pterm.DisableColor()
			}

			log.Debug().
				Str("command", cmd.Name()).
				Str("format", cfg.Output.Format).
				Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", config.FormatText, MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetHelpCommandGroupID("misc")

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newListCmd(state))
	rootCmd.AddCommand(newReorderCmd(state))
	rootCmd.AddCommand(newPreviewCmd(state))
	rootCmd.AddCommand(newExplainCmd(state))
	rootCmd.AddCommand(newGenConfigCmd(state))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd(state))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd, state
}
