package commands

import (
	"github.com/spf13/cobra"
)

// GlobalFlags are the persistent flags shared by every command
type GlobalFlags struct {
	Env        string
	ConfigPath string
	Verbose    bool
}

// NewRootCmd builds the command tree. Running the root with no subcommand runs the probe.
// initApp fills app before any command runs.
func NewRootCmd(app *AppContext, flags *GlobalFlags, initApp func() error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vacation-probe",
		Short: "Vacation API probe - exercise the HR vacations endpoint",
		Long: `Sends a sample vacation record to the vacations collection, then lists the collection,
printing every request and response for manual inspection. Nothing is asserted.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunProbe(app),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.CloseLog != nil {
				app.CloseLog()
			} else if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.Env, "env", "e", "", "Environment suffix for the config file (vacation_probe_config.<env>.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to a config file; overrides --env lookup")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log request details to stderr")

	rootCmd.AddCommand(ProbeCmd(app))
	rootCmd.AddCommand(CreateCmd(app))
	rootCmd.AddCommand(ListCmd(app))
	rootCmd.AddCommand(DeleteCmd(app))
	rootCmd.AddCommand(SampleCmd(app))

	return rootCmd
}
