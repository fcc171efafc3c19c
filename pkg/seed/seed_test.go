package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mergington/activities/pkg/stor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	activities := Default()
	require.Len(t, activities, 9)
	require.NoError(t, stor.ValidateCatalog(activities))
	assert.Equal(t, "Chess Club", activities[0].Name)

	// fresh copy each call
	activities[0].Participants[0] = "changed@x.edu"
	assert.Equal(t, "michael@mergington.edu", Default()[0].Participants[0])
}

const yamlSeed = `activities:
  - name: Chess Club
    description: Learn strategies
    schedule: Fridays
    max_participants: 12
    participants:
      - michael@mergington.edu
  - name: Robotics
    description: Build robots
    schedule: Mondays
    max_participants: 4
`

const jsonSeed = `{"activities": [
  {"name": "Chess Club", "description": "Learn strategies", "schedule": "Fridays",
   "max_participants": 12, "participants": ["michael@mergington.edu"]},
  {"name": "Robotics", "description": "Build robots", "schedule": "Mondays", "max_participants": 4}
]}`

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		contents string
	}{
		{name: "yaml", filename: "seed.yaml", contents: yamlSeed},
		{name: "yml", filename: "seed.yml", contents: yamlSeed},
		{name: "json", filename: "seed.json", contents: jsonSeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0600))

			activities, err := LoadFile(path)
			require.NoError(t, err)
			require.Len(t, activities, 2)
			assert.Equal(t, "Chess Club", activities[0].Name)
			assert.Equal(t, 12, activities[0].MaxParticipants)
			assert.Equal(t, []string{"michael@mergington.edu"}, activities[0].Participants)
			assert.Equal(t, "Robotics", activities[1].Name)
			assert.Empty(t, activities[1].Participants)
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	txt := filepath.Join(dir, "seed.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0600))
	_, err = LoadFile(txt)
	assert.ErrorContains(t, err, "unsupported seed file type")

	bad := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0600))
	_, err = LoadFile(bad)
	assert.ErrorContains(t, err, "unable to parse seed file")
}

func TestDBRoundTrip(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, WriteToDB(db, Default()))

	activities, err := LoadFromDB(db)
	require.NoError(t, err)
	assert.Equal(t, Default(), activities)
}
