package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/vacation-probe/pkg/core/model"
	"github.com/jakechorley/vacation-probe/pkg/core/services"
)

// CreateCmd creates the create command
func CreateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "POST the sample vacation record only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := services.CreateVacation(app.Ctx, app.VacationsClient, app.Out, app.Logger, model.SampleVacation())
			app.Logger.Debug("create command finished", zap.Int("status", result.StatusCode))
			return nil
		},
	}
}

// ListCmd creates the list command
func ListCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "GET the vacation collection only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := services.ListVacations(app.Ctx, app.VacationsClient, app.Out, app.Logger)
			app.Logger.Debug("list command finished", zap.Int("status", result.StatusCode))
			return nil
		},
	}
}

// DeleteCmd creates the delete command
func DeleteCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "DELETE a single vacation record by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := services.DeleteVacation(app.Ctx, app.VacationsClient, app.Out, app.Logger, args[0])
			app.Logger.Debug("delete command finished",
				zap.String("id", args[0]),
				zap.Int("status", result.StatusCode))
			return nil
		},
	}
}

// SampleCmd creates the sample command
func SampleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the sample vacation record without sending it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return services.PrintSample(app.Out, model.SampleVacation())
		},
	}
}
