package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nordclinic/bookctl/pkg/api"
	"github.com/nordclinic/bookctl/pkg/config"
	"github.com/nordclinic/bookctl/pkg/log"
	"github.com/nordclinic/bookctl/pkg/session"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var (
	cfg       *config.Config
	sessions  session.Store
	boltStore *session.BoltStore
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bookctl",
	Short: "Bookctl - appointment booking client",
	Long: `Bookctl is the command-line client for the clinic's appointment
booking service. Patients browse open slots, book and cancel
appointments; admins review every booking.

The login session is stored locally, so logging in once is enough
until the token expires or you log out.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"bookctl version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("api-url", "", "Booking API base URL (overrides config file and BOOKCTL_API_URL)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON instead of console format")
}

// setup loads configuration, initializes logging, and opens the local
// session store. Runs before every command.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("api-url") {
		cfg.APIURL, _ = cmd.Flags().GetString("api-url")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	log.Init(log.Config{
		Level:      log.ParseLevel(cfg.LogLevel),
		JSONOutput: jsonOut,
		Output:     os.Stderr,
	})

	boltStore, err = session.NewBoltStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open session store: %v", err)
	}
	sessions = boltStore

	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if boltStore != nil {
		_ = boltStore.Close()
	}
}

// newAPIClient builds the REST client from the resolved configuration
func newAPIClient() *api.Client {
	return api.NewClient(cfg.APIURL, sessions)
}
