package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"campusAdmin/internal/config"
	cataloginfra "campusAdmin/internal/modules/catalog/infrastructure"
	dashboardusecase "campusAdmin/internal/modules/dashboard/application/usecase"
	sessionusecase "campusAdmin/internal/modules/session/application/usecase"
	sessioninfra "campusAdmin/internal/modules/session/infrastructure"
	"campusAdmin/internal/shared/logging"
	"campusAdmin/internal/shared/rest"
)

// app bundles the SDK clients the subcommands share. The transport is built
// once so every command rides the same cookie jar.
type app struct {
	apiURL string

	cfg       *config.Config
	client    *rest.Client
	provider  *cataloginfra.RESTProvider
	auth      *sessioninfra.AuthHTTPClient
	adapter   *sessionusecase.SessionAdapter
	dashboard *dashboardusecase.Service
	sessions  *sessionFile
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.apiURL == "" {
		a.apiURL = cfg.REST.BaseURL
	}

	logging.Setup(os.Stderr, logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})

	a.client = rest.New(a.apiURL, cfg.REST.Timeout, nil)
	a.provider = cataloginfra.NewRESTProvider(a.client)
	a.auth = sessioninfra.NewAuthHTTPClient(a.client)
	a.adapter = sessionusecase.NewSessionAdapter(a.auth, sessioninfra.NewOrganizationHTTPClient(a.client))
	a.dashboard = dashboardusecase.NewService(a.provider)

	a.sessions = newSessionFile()
	return a.sessions.restore(a.client)
}

// NewRootCmd assembles the campusadm command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "campusadm",
		Short:        "Administer a campus backend from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.apiURL, "api", "", "backend API base URL (defaults to CAMPUS_REST_BASE_URL)")

	root.AddCommand(newLoginCmd(a))
	root.AddCommand(newLogoutCmd(a))
	root.AddCommand(newWhoamiCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newGetCmd(a))
	root.AddCommand(newCreateCmd(a))
	root.AddCommand(newUpdateCmd(a))
	root.AddCommand(newDeleteCmd(a))
	root.AddCommand(newStatsCmd(a))
	root.AddCommand(newChartCmd(a))
	root.AddCommand(newWatchCmd(a))
	return root
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func printJSON(cmd *cobra.Command, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
