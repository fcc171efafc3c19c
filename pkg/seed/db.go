package seed

import (
	"github.com/mergington/activities/pkg/actmodel"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// LoadFromDB reads the catalog from the activities and
// activity_participants tables. The database is only read at startup.
func LoadFromDB(db *gorm.DB) ([]actmodel.Activity, error) {
	var rows []actmodel.SeedActivity
	if err := db.Order("position, id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "unable to load activities")
	}

	var participants []actmodel.SeedParticipant
	if err := db.Order("activity_id, position, id").Find(&participants).Error; err != nil {
		return nil, errors.Wrap(err, "unable to load activity participants")
	}

	byActivity := make(map[int][]actmodel.SeedParticipant)
	for _, p := range participants {
		byActivity[p.SeedActivityID] = append(byActivity[p.SeedActivityID], p)
	}

	activities := make([]actmodel.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, row.ToActivity(byActivity[row.ID]))
	}

	return activities, nil
}

// WriteToDB creates the seed tables and fills them with activities. It is
// used to prepare a seed database.
func WriteToDB(db *gorm.DB, activities []actmodel.Activity) error {
	if err := db.AutoMigrate(&actmodel.SeedActivity{}, &actmodel.SeedParticipant{}); err != nil {
		return errors.Wrap(err, "unable to create seed tables")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i, a := range activities {
			row := actmodel.SeedActivity{
				Name:            a.Name,
				Description:     a.Description,
				Schedule:        a.Schedule,
				MaxParticipants: a.MaxParticipants,
				Position:        i,
			}
			if err := tx.Create(&row).Error; err != nil {
				return errors.Wrapf(err, "unable to write activity %s", a.Name)
			}

			for j, email := range a.Participants {
				p := actmodel.SeedParticipant{SeedActivityID: row.ID, Email: email, Position: j}
				if err := tx.Create(&p).Error; err != nil {
					return errors.Wrapf(err, "unable to write participant %s for %s", email, a.Name)
				}
			}
		}

		return nil
	})
}
