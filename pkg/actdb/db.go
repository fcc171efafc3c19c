package actdb

import (
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/mergington/activities/pkg/config"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported values for ACTIVITIES_SEED_DB.
const (
	DriverMySQL  = "mysql"
	DriverSqlite = "sqlite"
)

func MakeDSNFromConfig(c config.Configer) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.GetKey("DB_USERNAME"),
		c.GetKey("DB_PASSWORD"),
		c.GetKeyWithDefault("DB_HOST", "localhost"),
		c.GetKeyWithDefault("DB_PORT", "3306"),
		c.GetKey("DB_DATABASE"))
}

func dialectorFor(driver string, c config.Configer) (gorm.Dialector, error) {
	switch driver {
	case DriverMySQL:
		return mysql.Open(MakeDSNFromConfig(c)), nil
	case DriverSqlite:
		path := c.GetPathKey(config.SeedSqlitePathKey)
		if path == "" {
			return nil, errors.Errorf("%s is required for the sqlite driver", config.SeedSqlitePathKey)
		}
		return sqlite.Open(path), nil
	default:
		return nil, errors.Errorf("unknown database driver '%s'", driver)
	}
}

// Open connects once, without retrying.
func Open(driver string, c config.Configer) (*gorm.DB, error) {
	dialector, err := dialectorFor(driver, c)
	if err != nil {
		return nil, err
	}

	return openDialector(driver, dialector)
}

func openDialector(driver string, dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s database", driver)
	}

	return db, nil
}

const maxDBRetries = 5

var retryDelay = 3 * time.Second

// ConnectToDB attempts to connect to the database maxDBRetries times, sleeping
// retryDelay between attempts. Configuration errors are returned without
// retrying.
func ConnectToDB(driver string, c config.Configer) (*gorm.DB, error) {
	dialector, err := dialectorFor(driver, c)
	if err != nil {
		return nil, err
	}

	for retryCount := 1; ; retryCount++ {
		db, err := openDialector(driver, dialector)
		switch {
		case err == nil:
			return db, nil
		case retryCount >= maxDBRetries:
			return nil, err
		default:
			log.Warnf("Unable to open %s db (attempt %d): %s", driver, retryCount, err)
			time.Sleep(retryDelay)
		}
	}
}

// MustConnectToDB calls ConnectToDB and log.Fatalf()s when it fails.
func MustConnectToDB(driver string, c config.Configer) *gorm.DB {
	db, err := ConnectToDB(driver, c)
	if err != nil {
		log.Fatalf("Failed to open %s db: %s", driver, err)
	}

	return db
}
