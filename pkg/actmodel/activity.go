package actmodel

import (
	"slices"
)

// Activity is a single catalog entry. Name is the catalog key and is not
// part of the serialized listing, which is keyed by it.
type Activity struct {
	Name            string   `json:"-" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}

	return left
}

// Clone returns a copy that shares no roster storage with a.
func (a Activity) Clone() Activity {
	c := a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return c
}
