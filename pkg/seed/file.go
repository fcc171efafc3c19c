package seed

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/mergington/activities/pkg/actmodel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// fileActivity is the on-disk form of an activity. Unlike the listing, a
// seed file carries the name inside each record.
type fileActivity struct {
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

type fileCatalog struct {
	Activities []fileActivity `json:"activities" yaml:"activities"`
}

// LoadFile reads a catalog from a .yaml, .yml or .json file.
func LoadFile(path string) ([]actmodel.Activity, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read seed file %s", path)
	}

	var catalog fileCatalog
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &catalog)
	case ".json":
		err = json.Unmarshal(b, &catalog)
	default:
		return nil, errors.Errorf("unsupported seed file type '%s' for %s", ext, path)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse seed file %s", path)
	}

	activities := make([]actmodel.Activity, 0, len(catalog.Activities))
	for _, a := range catalog.Activities {
		activities = append(activities, actmodel.Activity{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants,
		})
	}

	return activities, nil
}
