package cli

import (
	"strings"

	"github.com/arthur-debert/wslaunch/internal/version"
	"github.com/arthur-debert/wslaunch/pkg/config"
	"github.com/arthur-debert/wslaunch/pkg/logging"
	"github.com/arthur-debert/wslaunch/pkg/registry"
	"github.com/arthur-debert/wslaunch/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds state shared by every command of one root
type app struct {
	verbosity  int
	configPath string
	dataRoot   string
	store      string
	format     ui.Format

	cfg      *config.Config
	registry *registry.Registry
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(registry.Default())
}

func newRootCmd(reg *registry.Registry) *cobra.Command {
	a := &app{registry: reg}

	rootCmd := &cobra.Command{
		Use:     "wslaunch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			logging.SetupLoggerWithOutput(max(a.verbosity, a.cfg.Logging.Verbosity), cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVar(&a.configPath, "config", "", "config file (default is ./.wslaunch.toml or ./wslaunch.toml)")
	flags.StringVar(&a.dataRoot, "data-root", "", "directory holding templates/ (default .workspace-launch)")
	flags.StringVar(&a.store, "store", "", "backing store: os, memory, billy-memory or none")
	flags.VarP(&a.format, "output", "o", "output format: "+strings.Join(ui.FormatNames(), ", "))

	rootCmd.AddCommand(newMaterializeCmd(a))
	rootCmd.AddCommand(newPlanCmd(a))
	rootCmd.AddCommand(newDiffCmd(a))
	rootCmd.AddCommand(newLinkCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadConfig layers flags over the configuration files and environment
func (a *app) loadConfig(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("data-root") {
		overrides["data_root"] = a.dataRoot
	}
	if cmd.Flags().Changed("store") {
		overrides["store.backend"] = a.store
	}

	cfg, err := config.Load(config.LoadOptions{
		Path:      a.configPath,
		Overrides: overrides,
	})
	if err != nil {
		return err
	}
	config.Initialize(cfg)
	a.cfg = cfg
	return nil
}

func (a *app) renderer(cmd *cobra.Command) *ui.Renderer {
	return ui.NewRenderer(a.format, cmd.OutOrStdout())
}
