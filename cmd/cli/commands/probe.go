package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/vacation-probe/pkg/core/model"
	"github.com/jakechorley/vacation-probe/pkg/core/services"
)

// ProbeCmd creates the probe command
func ProbeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "POST the sample vacation record, then GET the collection",
		Args:  cobra.NoArgs,
		RunE:  RunProbe(app),
	}
}

// RunProbe runs both probe operations. Failures are printed, never returned,
// so the process exits 0 whatever the server did.
func RunProbe(app *AppContext) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		result := services.ProbeVacations(app.Ctx, app.VacationsClient, app.Out, app.Logger, model.SampleVacation())

		app.Logger.Debug("probe command finished", zap.Int("failures", result.Failures()))
		return nil
	}
}
