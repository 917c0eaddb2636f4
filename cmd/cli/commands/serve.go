package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thoshino/wardroster/pkg/api"
)

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the schedule HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetString("port")
			if port == "" {
				port = os.Getenv("PORT")
			}
			if port == "" {
				port = "8080"
			}

			var store api.RunStore
			if app.Database != nil {
				store = app.Database
			}

			app.Logger.Info("serve command", zap.String("port", port))
			return api.Serve(app.Logger, api.NewHandler(store, app.Logger), port)
		},
	}

	cmd.Flags().String("port", "", "Port to listen on (defaults to PORT, then 8080)")

	return cmd
}
