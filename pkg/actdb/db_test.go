package actdb

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mergington/activities/pkg/config"
	"github.com/mergington/activities/pkg/tutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeDSNFromConfig(t *testing.T) {
	c := config.NewMapConfig(map[string]string{
		"DB_USERNAME": "mc",
		"DB_PASSWORD": "pw",
		"DB_DATABASE": "school",
	})

	assert.Equal(t, "mc:pw@tcp(localhost:3306)/school?charset=utf8mb4&parseTime=True&loc=Local", MakeDSNFromConfig(c))
}

func TestOpenSqlite(t *testing.T) {
	c := config.NewMapConfig(map[string]string{
		config.SeedSqlitePathKey: filepath.Join(t.TempDir(), "seed.db"),
	})

	db, err := Open(DriverSqlite, c)
	require.NoError(t, err)
	require.NoError(t, db.Exec("select 1").Error)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(DriverSqlite, config.NewMapConfig(nil))
	assert.ErrorContains(t, err, config.SeedSqlitePathKey)

	_, err = Open("postgres", config.NewMapConfig(nil))
	assert.ErrorContains(t, err, "unknown database driver")
}

func TestConnectToDBConfigErrorsAreNotRetried(t *testing.T) {
	saved := retryDelay
	retryDelay = time.Minute
	t.Cleanup(func() { retryDelay = saved })

	start := time.Now()
	_, err := ConnectToDB("postgres", config.NewMapConfig(nil))
	assert.ErrorContains(t, err, "unknown database driver")

	_, err = ConnectToDB(DriverSqlite, config.NewMapConfig(nil))
	assert.ErrorContains(t, err, config.SeedSqlitePathKey)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestConnectToDBSqlite(t *testing.T) {
	c := config.NewMapConfig(map[string]string{
		config.SeedSqlitePathKey: filepath.Join(t.TempDir(), "seed.db"),
	})

	db, err := ConnectToDB(DriverSqlite, c)
	require.NoError(t, err)
	require.NoError(t, db.Exec("select 1").Error)
}

func TestMustConnectToMySQL(t *testing.T) {
	tutil.SkipUnlessIntegration(t)

	db := MustConnectToDB(DriverMySQL, config.NewDotenvConfig(""))
	require.NoError(t, db.Exec("select 1").Error)
}
