package actmodel

// SeedActivity is the database row a catalog can be seeded from. Position
// orders the catalog the same way a seed file would.
type SeedActivity struct {
	ID              int    `json:"id"`
	Name            string `json:"name" gorm:"uniqueIndex;size:191"`
	Description     string `json:"description"`
	Schedule        string `json:"schedule"`
	MaxParticipants int    `json:"max_participants"`
	Position        int    `json:"position"`
}

func (SeedActivity) TableName() string {
	return "activities"
}

// SeedParticipant is an initial roster entry for a SeedActivity.
type SeedParticipant struct {
	ID             int           `json:"id"`
	SeedActivityID int           `json:"activity_id" gorm:"column:activity_id"`
	SeedActivity   *SeedActivity `json:"activity" gorm:"foreignKey:SeedActivityID;references:ID"`
	Email          string        `json:"email"`
	Position       int           `json:"position"`
}

func (SeedParticipant) TableName() string {
	return "activity_participants"
}

func (a SeedActivity) ToActivity(participants []SeedParticipant) Activity {
	activity := Activity{
		Name:            a.Name,
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    make([]string, 0, len(participants)),
	}

	for _, p := range participants {
		activity.Participants = append(activity.Participants, p.Email)
	}

	return activity
}
