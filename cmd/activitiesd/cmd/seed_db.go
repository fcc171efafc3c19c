package cmd

import (
	"github.com/apex/log"
	"github.com/mergington/activities/pkg/actdb"
	"github.com/mergington/activities/pkg/actmodel"
	"github.com/mergington/activities/pkg/clog"
	"github.com/mergington/activities/pkg/config"
	"github.com/mergington/activities/pkg/seed"
	"github.com/mergington/activities/pkg/stor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var seedDBCmd = &cobra.Command{
	Use:   "seed-db",
	Short: "Write the catalog into a seed database",
	Long: `Write the catalog into the database named by ACTIVITIES_SEED_DB
(mysql or sqlite). The catalog comes from --seed-file when given, otherwise
the built-in activities are written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := config.MustLoadFromDotenv()
		if err := setupLogging(c); err != nil {
			return err
		}

		return seedDB(c)
	},
}

func seedDB(c config.Configer) error {
	driver := c.GetKey(config.SeedDBKey)
	if driver == "" {
		return errors.Errorf("%s must name a database driver", config.SeedDBKey)
	}

	activities, err := catalogToWrite(c)
	if err != nil {
		return err
	}

	db, err := actdb.ConnectToDB(driver, c)
	if err != nil {
		return err
	}

	if err := seed.WriteToDB(db, activities); err != nil {
		return err
	}

	clog.Global().WithFields(log.Fields{"driver": driver, "activities": len(activities)}).Info("seed database written")
	return nil
}

func catalogToWrite(c config.Configer) ([]actmodel.Activity, error) {
	activities := seed.Default()
	if path := settingPath(c, "seed-file", config.SeedFileKey, ""); path != "" {
		var err error
		if activities, err = seed.LoadFile(path); err != nil {
			return nil, err
		}
	}

	return activities, stor.ValidateCatalog(activities)
}

func init() {
	rootCmd.AddCommand(seedDBCmd)
}
