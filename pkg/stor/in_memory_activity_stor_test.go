package stor

import (
	"sync"
	"testing"

	"github.com/mergington/activities/pkg/actmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStor(t *testing.T) *InMemoryActivityStor {
	s, err := NewInMemoryActivityStor([]actmodel.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 3,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 1,
		},
	})
	require.NoError(t, err)
	return s
}

func TestNewInMemoryActivityStorValidation(t *testing.T) {
	tests := []struct {
		name       string
		activities []actmodel.Activity
	}{
		{name: "blank name", activities: []actmodel.Activity{{Name: " ", MaxParticipants: 1}}},
		{name: "duplicate name", activities: []actmodel.Activity{{Name: "A", MaxParticipants: 1}, {Name: "A", MaxParticipants: 1}}},
		{name: "zero capacity", activities: []actmodel.Activity{{Name: "A"}}},
		{name: "over capacity", activities: []actmodel.Activity{{Name: "A", MaxParticipants: 1, Participants: []string{"a", "b"}}}},
		{name: "duplicate participant", activities: []actmodel.Activity{{Name: "A", MaxParticipants: 3, Participants: []string{"a", "a"}}}},
		{name: "blank participant", activities: []actmodel.Activity{{Name: "A", MaxParticipants: 3, Participants: []string{""}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInMemoryActivityStor(tt.activities)
			require.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestNewInMemoryActivityStorCopiesSeed(t *testing.T) {
	seed := []actmodel.Activity{{Name: "A", MaxParticipants: 2, Participants: []string{"a@x.edu"}}}
	s, err := NewInMemoryActivityStor(seed)
	require.NoError(t, err)

	seed[0].Participants[0] = "changed@x.edu"

	a, err := s.GetActivityByName("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.edu"}, a.Participants)
}

func TestListActivitiesReturnsSnapshot(t *testing.T) {
	s := newTestStor(t)

	activities := s.ListActivities()
	require.Len(t, activities, 2)
	assert.Equal(t, 3, activities["Chess Club"].MaxParticipants)
	assert.NotNil(t, activities["Art Studio"].Participants)

	chess := activities["Chess Club"]
	chess.Participants[0] = "mutated@x.edu"

	again := s.ListActivities()
	assert.Equal(t, "michael@mergington.edu", again["Chess Club"].Participants[0])
	assert.Equal(t, []string{"Chess Club", "Art Studio"}, s.ActivityNames())
}

func TestGetActivityByName(t *testing.T) {
	s := newTestStor(t)

	a, err := s.GetActivityByName("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, "Chess Club", a.Name)

	_, err = s.GetActivityByName("chess club")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestAddParticipant(t *testing.T) {
	s := newTestStor(t)

	a, err := s.AddParticipant("Chess Club", "new@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu", "new@mergington.edu"}, a.Participants)

	_, err = s.AddParticipant("Chess Club", "other@mergington.edu")
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = s.AddParticipant("Chess Club", "new@mergington.edu")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	_, err = s.AddParticipant("Nonexistent Club", "new@mergington.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)

	chess, err := s.GetActivityByName("Chess Club")
	require.NoError(t, err)
	assert.Len(t, chess.Participants, 3)
}

func TestRemoveParticipantKeepsOrder(t *testing.T) {
	s := newTestStor(t)
	_, err := s.AddParticipant("Chess Club", "c@mergington.edu")
	require.NoError(t, err)

	a, err := s.RemoveParticipant("Chess Club", "daniel@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "c@mergington.edu"}, a.Participants)

	_, err = s.RemoveParticipant("Chess Club", "daniel@mergington.edu")
	assert.ErrorIs(t, err, ErrNotRegistered)

	_, err = s.RemoveParticipant("Fake Club", "daniel@mergington.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestConcurrentAddParticipantNeverExceedsCapacity(t *testing.T) {
	s := newTestStor(t)
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := string(rune('a'+i)) + "@mergington.edu"
			if _, err := s.AddParticipant("Art Studio", email); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
			_ = s.ListActivities()
		}(i)
	}

	wg.Wait()
	assert.Equal(t, 1, successes)

	a, err := s.GetActivityByName("Art Studio")
	require.NoError(t, err)
	assert.Len(t, a.Participants, 1)
}
