package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/budgetwise/backend/pkg/cards"
	"github.com/budgetwise/backend/pkg/client"
	"github.com/budgetwise/backend/pkg/state"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	DefaultAPIURL = "http://localhost:3000/api"
	envPrefix     = "BUDGETWISE"
)

// app carries the configuration shared by all commands.
type app struct {
	v       *viper.Viper
	cfgFile string
}

// Execute runs the command line with the given arguments and returns the
// exit code. Failures are printed to stderr as a one line notification.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, FormatError(err.Error()))
		return 1
	}

	return 0
}

// NewRootCmd returns the budgetwise command with all subcommands. Every
// call returns an independent command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "budgetwise",
		Short: "Track income, expenses and budgets",
		Long: `budgetwise talks to a BudgetWise API to manage transactions, budgets and
categories, to show spending summaries and to ask for recommendations.

Settings are read from flags, from BUDGETWISE_* environment variables and
from $HOME/.config/budgetwise/config.yaml, in this order.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/budgetwise/config.yaml)")
	flags.String("api-url", DefaultAPIURL, "URL of the BudgetWise API")
	flags.String("card-service-url", cards.DefaultURL, "URL of the credit card service")
	flags.Duration("timeout", state.DefaultTimeout, "timeout for each request")
	flags.Bool("verbose", false, "log requests to stderr")

	for _, name := range []string{"api-url", "card-service-url", "timeout", "verbose"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	cmd.AddCommand(
		a.summaryCmd(),
		a.transactionsCmd(),
		a.budgetsCmd(),
		a.categoriesCmd(),
		a.adviseCmd(),
		a.cardsCmd(),
	)

	return cmd
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "budgetwise"))
		}
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	level := zerolog.Disabled
	if a.v.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level).With().Timestamp().Logger()

	if a.timeout() <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", a.v.GetString("timeout"))
	}

	return nil
}

func (a *app) timeout() time.Duration {
	return a.v.GetDuration("timeout")
}

func (a *app) client() (*client.Client, error) {
	return client.New(a.v.GetString("api-url"), a.timeout())
}

// store returns a store that has not been loaded yet.
func (a *app) store() (*state.Store, error) {
	c, err := a.client()
	if err != nil {
		return nil, err
	}

	return state.New(c, state.WithTimeout(a.timeout())), nil
}

// loadedStore returns a store with all collections loaded.
func (a *app) loadedStore(ctx context.Context) (*state.Store, error) {
	s, err := a.store()
	if err != nil {
		return nil, err
	}

	if err := s.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return s, nil
}

func (a *app) cards() (*cards.Client, error) {
	return cards.New(a.v.GetString("card-service-url"), a.timeout())
}
