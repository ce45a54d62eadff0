package portfs

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/portfs/internal/version"
	"github.com/arthur-debert/portfs/pkg/config"
	"github.com/arthur-debert/portfs/pkg/filesystem"
	"github.com/arthur-debert/portfs/pkg/logging"
	"github.com/arthur-debert/portfs/pkg/ui"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	fsys     *filesystem.FileSystem
	cfg      *config.Config
	format   ui.Format
	renderer ui.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.Default())
}

func newRootCmd(fsys *filesystem.FileSystem) *cobra.Command {
	var (
		verbosity  int
		configFile string
		format     string
	)
	a := &app{fsys: fsys}

	rootCmd := &cobra.Command{
		Use:     "portfs",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("verbose") {
				overrides["log.verbosity"] = verbosity
			}
			cfg, err := config.Load(config.LoadOptions{File: configFile, Overrides: overrides})
			if err != nil {
				return fmt.Errorf(MsgErrConfig, err)
			}
			a.cfg = cfg

			logging.SetupLogger(cfg.Log.Verbosity)
			logging.LogCommand(cmd.Name(), args)

			name := cfg.Output.Format
			if format != "" {
				name = format
			}
			f, err := ui.ParseFormat(name)
			if err != nil {
				return fmt.Errorf(MsgErrFormat, err)
			}
			a.format = f
			a.renderer, err = ui.NewRenderer(f, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf(MsgErrFormat, err)
			}
			log.Debug().Str("command", cmd.Name()).Str("format", f.String()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&format, "format", "o", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "query", Title: "QUERIES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "change", Title: "CHANGES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newStatCmd(a))
	rootCmd.AddCommand(newCanonicalCmd(a))
	rootCmd.AddCommand(newLsCmd(a))
	rootCmd.AddCommand(newDirsCmd(a))
	rootCmd.AddCommand(newEquivCmd(a))
	rootCmd.AddCommand(newMountCmd(a))
	rootCmd.AddCommand(newMkdirCmd(a))
	rootCmd.AddCommand(newRmCmd(a))
	rootCmd.AddCommand(newChmodCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	return rootCmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderer.RenderResult(versionResult{Info: version.Get()})
		},
	}
}
