package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mergington/activities/pkg/actdb"
	"github.com/mergington/activities/pkg/actmodel"
	"github.com/mergington/activities/pkg/clog"
	"github.com/mergington/activities/pkg/config"
	"github.com/mergington/activities/pkg/metrics"
	"github.com/mergington/activities/pkg/registration"
	"github.com/mergington/activities/pkg/seed"
	"github.com/mergington/activities/pkg/stor"
	"github.com/mergington/activities/pkg/webapi"
	"github.com/mergington/activities/pkg/wserv"
	"github.com/mitchellh/go-homedir"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "activitiesd",
	Short: "Run the Mergington High School activities server",
	Long: `Run the Mergington High School activities server. It serves the
activity catalog, lets students sign up for and unregister from activities,
and serves the static web pages.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := config.MustLoadFromDotenv()
		config.SetConfig(c)
		if err := Run(cmd.Context(), c); err != nil {
			log.Fatalf("activitiesd: %s", err)
		}
	},
}

// Run loads the catalog, wires the server and blocks until ctx is done or
// the process gets SIGINT/SIGTERM.
func Run(ctx context.Context, c config.Configer) error {
	if err := setupLogging(c); err != nil {
		return err
	}

	activities, err := loadCatalog(c)
	if err != nil {
		return err
	}

	activityStor, err := stor.NewInMemoryActivityStor(activities)
	if err != nil {
		return err
	}
	clog.Global().WithField("activities", len(activities)).Info("catalog loaded")

	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)
	recorder.Observe(activityStor)

	hub := wserv.NewHub(activityStor.ListActivities)
	registrationService := registration.NewService(activityStor, recorder, hub)

	e := newServer(RouteOpts{
		activityStor:        activityStor,
		registrationService: registrationService,
		recorder:            recorder,
		gatherer:            reg,
		hub:                 hub,
		staticDir:           settingPath(c, "static-dir", config.StaticDirKey, "static"),
	})

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := c.GetKey(config.HostKey) + ":" + settingString(c, "port", config.PortKey, "8000")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		clog.Global().WithField("addr", addr).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// setupLogging applies the configured level to both clog's global logger and
// the package level apex logger.
func setupLogging(c config.Configer) error {
	level, err := log.ParseLevel(settingString(c, "log-level", config.LogLevelKey, "info"))
	if err != nil {
		return err
	}

	clog.SetLevel(clog.GlobalLoggerCtx, level)
	log.SetHandler(clog.NewHandler(os.Stdout))
	log.SetLevel(level)
	return nil
}

func newServer(opts RouteOpts) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = webapi.HTTPErrorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: newRequestID,
	}))
	e.Use(webapi.RequestLogger())

	setupRoutes(e, opts)
	return e
}

// loadCatalog picks the seed source: a seed file, then a seed database, then
// the built-in catalog.
func loadCatalog(c config.Configer) ([]actmodel.Activity, error) {
	if path := settingPath(c, "seed-file", config.SeedFileKey, ""); path != "" {
		clog.Global().WithField("file", path).Info("loading catalog from seed file")
		return seed.LoadFile(path)
	}

	if driver := c.GetKey(config.SeedDBKey); driver != "" {
		clog.Global().WithField("driver", driver).Info("loading catalog from database")
		db := actdb.MustConnectToDB(driver, c)
		return seed.LoadFromDB(db)
	}

	return seed.Default(), nil
}

// settingString prefers a command line flag (through viper) over the
// dotenv/environment config.
func settingString(c config.Configer, flag, key, defaultValue string) string {
	if viper.IsSet(flag) {
		if v := viper.GetString(flag); v != "" {
			return v
		}
	}

	return c.GetKeyWithDefault(key, defaultValue)
}

func settingPath(c config.Configer, flag, key, defaultValue string) string {
	path := settingString(c, flag, key, defaultValue)
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}

	return expanded
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("port", "", "port to listen on (default $ACTIVITIES_PORT or 8000)")
	rootCmd.PersistentFlags().String("seed-file", "", "YAML or JSON catalog to seed from")
	rootCmd.Flags().String("static-dir", "", "directory served under /static")
	rootCmd.PersistentFlags().String("log-level", "", "global log level (debug, info, warn, error)")

	for _, name := range []string{"port", "static-dir"} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
	for _, name := range []string{"seed-file", "log-level"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}
