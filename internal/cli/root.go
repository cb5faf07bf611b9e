// Package cli wires the command line: the interactive editor and the
// headless table commands.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dylanshade/style-organizer/internal/config"
	"github.com/dylanshade/style-organizer/internal/logging"
	"github.com/dylanshade/style-organizer/internal/service"
	"github.com/dylanshade/style-organizer/internal/storage"
	"github.com/dylanshade/style-organizer/internal/ui"
)

// Execute runs the root command with os.Args
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

// app holds what every command needs once flags and config are resolved
type app struct {
	cfg     *config.Config
	logFile *os.File
}

func newRootCmd(version string) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "style-organizer [table.csv]",
		Short: "Organize Stable Diffusion prompt styles",
		Long: `style-organizer edits a CSV table of Stable Diffusion styles
(name, prompt, negative_prompt). Run it without a command to open the
interactive editor; the subcommands work on a table file headlessly.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (default: $XDG_CONFIG_HOME/style-organizer/config.yaml)")
	flags.String("settings", "", "Preferences file (default: settings.json)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: console or json")
	flags.String("log-file", "", "Write logs to this file (default: logs are discarded)")

	cmd.AddCommand(
		newListCmd(a),
		newExportCmd(a),
		newAddCmd(a),
		newSeparatorCmd(a),
		newDeleteCmd(a),
		newMoveCmd(a),
		newSettingsCmd(a),
	)

	return cmd
}

// setup loads configuration and initializes logging. Logging must be ready
// before any service is built because components capture the logger.
func (a *app) setup(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loader.SetConfigFile(path)
	}
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}
	if cfg.Logging.File != "" {
		f, err := logging.OpenFile(cfg.Logging.File)
		if err != nil {
			return err
		}
		a.logFile = f
		logCfg.Output = f
	}
	logging.Init(logCfg)

	logging.Logger.Debug().
		Str("command", cmd.Name()).
		Str("config_file", loader.ConfigFileUsed()).
		Str("settings_path", cfg.SettingsPath).
		Msg("starting")
	return nil
}

func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func (a *app) newService() (*service.Service, error) {
	return service.NewService(storage.NewStorage(a.cfg.SettingsPath))
}

// openTable builds a service with the table at path loaded
func (a *app) openTable(path string) (*service.Service, error) {
	svc, err := a.newService()
	if err != nil {
		return nil, err
	}
	if err := svc.Open(path); err != nil {
		return nil, err
	}
	return svc, nil
}

func (a *app) runTUI(args []string) error {
	svc, err := a.newService()
	if err != nil {
		return err
	}

	path := a.cfg.TablePath
	if len(args) > 0 {
		path = args[0]
	}
	if path != "" {
		if err := svc.Open(path); err != nil {
			return err
		}
	}

	p := tea.NewProgram(ui.NewModel(svc), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	return nil
}
