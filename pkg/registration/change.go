package registration

import (
	"time"

	"github.com/mergington/activities/pkg/actmodel"
)

type ChangeKind string

const (
	ChangeSignedUp     ChangeKind = "signed_up"
	ChangeUnregistered ChangeKind = "unregistered"
)

// Change describes a completed roster mutation and the roster after it.
type Change struct {
	Kind            ChangeKind `json:"kind"`
	Activity        string     `json:"activity"`
	Email           string     `json:"email"`
	Participants    []string   `json:"participants"`
	MaxParticipants int        `json:"max_participants"`
	At              time.Time  `json:"at"`
}

type ChangeListener interface {
	RosterChanged(change Change)
}

// ChangeListenerFunc adapts a function to a ChangeListener.
type ChangeListenerFunc func(change Change)

func (f ChangeListenerFunc) RosterChanged(change Change) {
	f(change)
}

func newChange(kind ChangeKind, activity actmodel.Activity, email string) Change {
	return Change{
		Kind:            kind,
		Activity:        activity.Name,
		Email:           email,
		Participants:    activity.Participants,
		MaxParticipants: activity.MaxParticipants,
		At:              time.Now(),
	}
}
