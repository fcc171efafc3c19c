package metrics

import (
	"fmt"
	"testing"

	"github.com/mergington/activities/pkg/registration"
	"github.com/mergington/activities/pkg/seed"
	"github.com/mergington/activities/pkg/stor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderTracksRegistrations(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	activityStor, err := stor.NewInMemoryActivityStor(seed.Default())
	require.NoError(t, err)
	r.Observe(activityStor)
	assert.Equal(t, float64(2), testutil.ToFloat64(r.rosterSize.WithLabelValues("Chess Club")))
	assert.Equal(t, float64(12), testutil.ToFloat64(r.capacity.WithLabelValues("Chess Club")))

	svc := registration.NewService(activityStor, r)
	_, err = svc.SignUp("Chess Club", "m@mergington.edu")
	require.NoError(t, err)
	_, err = svc.Unregister("Chess Club", "m@mergington.edu")
	require.NoError(t, err)
	_, err = svc.SignUp("Chess Club", "n@mergington.edu")
	require.NoError(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.signups.WithLabelValues("Chess Club")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.unregistrations.WithLabelValues("Chess Club")))
	assert.Equal(t, float64(3), testutil.ToFloat64(r.rosterSize.WithLabelValues("Chess Club")))
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("%w: x", stor.ErrActivityNotFound), want: "activity_not_found"},
		{err: stor.ErrAlreadyRegistered, want: "already_registered"},
		{err: stor.ErrNotRegistered, want: "not_registered"},
		{err: stor.ErrCapacityExceeded, want: "capacity_exceeded"},
		{err: registration.ErrInvalidEmail, want: "invalid_email"},
		{err: assert.AnError, want: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Reason(tt.err))
		})
	}

	r := NewRecorder(prometheus.NewRegistry())
	r.Rejected("signup", stor.ErrAlreadyRegistered)
	assert.Equal(t, float64(1), testutil.ToFloat64(r.rejections.WithLabelValues("signup", "already_registered")))
}
