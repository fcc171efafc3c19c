package stor

import (
	"github.com/mergington/activities/pkg/actmodel"
)

// ActivityStor is the activity catalog: a fixed set of activities keyed by
// name, and the low-level roster mutations on them.
type ActivityStor interface {
	// ListActivities returns a consistent snapshot of every activity. The
	// returned values share no storage with the stor.
	ListActivities() map[string]actmodel.Activity
	// ActivityNames returns the catalog names in seed order.
	ActivityNames() []string
	GetActivityByName(name string) (*actmodel.Activity, error)
	AddParticipant(name, email string) (*actmodel.Activity, error)
	RemoveParticipant(name, email string) (*actmodel.Activity, error)
}
