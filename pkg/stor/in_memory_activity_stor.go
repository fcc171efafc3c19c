package stor

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/mergington/activities/pkg/actmodel"
)

// InMemoryActivityStor holds the catalog for the life of the process. The key
// set is fixed at construction; only rosters change afterwards.
type InMemoryActivityStor struct {
	mu         sync.RWMutex
	activities map[string]*actmodel.Activity

	// names preserves seed order for listings.
	names []string
}

// NewInMemoryActivityStor builds a catalog from seed activities. The seed is
// copied, so later changes to activities do not leak into the stor.
func NewInMemoryActivityStor(activities []actmodel.Activity) (*InMemoryActivityStor, error) {
	if err := ValidateCatalog(activities); err != nil {
		return nil, err
	}

	s := &InMemoryActivityStor{
		activities: make(map[string]*actmodel.Activity, len(activities)),
		names:      make([]string, 0, len(activities)),
	}

	for _, a := range activities {
		activity := a.Clone()
		if activity.Participants == nil {
			activity.Participants = []string{}
		}
		s.activities[activity.Name] = &activity
		s.names = append(s.names, activity.Name)
	}

	return s, nil
}

// ValidateCatalog checks the invariants a seed must satisfy before it can
// become a catalog.
func ValidateCatalog(activities []actmodel.Activity) error {
	seen := make(map[string]bool, len(activities))
	for i, a := range activities {
		switch {
		case strings.TrimSpace(a.Name) == "":
			return fmt.Errorf("%w: activity %d has no name", ErrInvalidCatalog, i)
		case seen[a.Name]:
			return fmt.Errorf("%w: duplicate activity '%s'", ErrInvalidCatalog, a.Name)
		case a.MaxParticipants <= 0:
			return fmt.Errorf("%w: activity '%s' has max participants %d", ErrInvalidCatalog, a.Name, a.MaxParticipants)
		case len(a.Participants) > a.MaxParticipants:
			return fmt.Errorf("%w: activity '%s' has %d participants but allows %d", ErrInvalidCatalog, a.Name, len(a.Participants), a.MaxParticipants)
		}
		seen[a.Name] = true

		emails := make(map[string]bool, len(a.Participants))
		for _, email := range a.Participants {
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("%w: activity '%s' has a blank participant", ErrInvalidCatalog, a.Name)
			}
			if emails[email] {
				return fmt.Errorf("%w: activity '%s' lists '%s' twice", ErrInvalidCatalog, a.Name, email)
			}
			emails[email] = true
		}
	}

	return nil
}

func (s *InMemoryActivityStor) ListActivities() map[string]actmodel.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make(map[string]actmodel.Activity, len(s.activities))
	for name, a := range s.activities {
		activities[name] = a.Clone()
	}

	return activities
}

func (s *InMemoryActivityStor) ActivityNames() []string {
	return slices.Clone(s.names)
}

func (s *InMemoryActivityStor) GetActivityByName(name string) (*actmodel.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActivityNotFound, name)
	}

	activity := a.Clone()
	return &activity, nil
}

// AddParticipant appends email to the named roster. It refuses duplicates and
// full rosters itself, so the roster invariants hold whoever the caller is.
func (s *InMemoryActivityStor) AddParticipant(name, email string) (*actmodel.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	switch {
	case !ok:
		return nil, fmt.Errorf("%w: %s", ErrActivityNotFound, name)
	case a.HasParticipant(email):
		return nil, fmt.Errorf("%w: %s in %s", ErrAlreadyRegistered, email, name)
	case a.IsFull():
		return nil, fmt.Errorf("%w: %s has %d of %d", ErrCapacityExceeded, name, len(a.Participants), a.MaxParticipants)
	}

	a.Participants = append(a.Participants, email)

	activity := a.Clone()
	return &activity, nil
}

// RemoveParticipant drops email from the named roster, keeping the order of
// everyone else.
func (s *InMemoryActivityStor) RemoveParticipant(name, email string) (*actmodel.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActivityNotFound, name)
	}

	i := slices.Index(a.Participants, email)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrNotRegistered, email, name)
	}

	a.Participants = slices.Delete(a.Participants, i, i+1)

	activity := a.Clone()
	return &activity, nil
}
