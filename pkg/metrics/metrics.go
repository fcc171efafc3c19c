package metrics

import (
	"errors"

	"github.com/mergington/activities/pkg/registration"
	"github.com/mergington/activities/pkg/stor"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder keeps registration counters and per-activity roster gauges. It
// is a registration.ChangeListener.
type Recorder struct {
	signups         *prometheus.CounterVec
	unregistrations *prometheus.CounterVec
	rejections      *prometheus.CounterVec
	rosterSize      *prometheus.GaugeVec
	capacity        *prometheus.GaugeVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "activities",
			Subsystem: "registration",
			Name:      "signups_total",
			Help:      "Successful signups by activity.",
		}, []string{"activity"}),
		unregistrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "activities",
			Subsystem: "registration",
			Name:      "unregistrations_total",
			Help:      "Successful unregistrations by activity.",
		}, []string{"activity"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "activities",
			Subsystem: "registration",
			Name:      "rejections_total",
			Help:      "Rejected signup and unregister requests by operation and reason.",
		}, []string{"operation", "reason"}),
		rosterSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "activities",
			Subsystem: "catalog",
			Name:      "participants",
			Help:      "Current roster size by activity.",
		}, []string{"activity"}),
		capacity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "activities",
			Subsystem: "catalog",
			Name:      "max_participants",
			Help:      "Roster capacity by activity.",
		}, []string{"activity"}),
	}

	reg.MustRegister(r.signups, r.unregistrations, r.rejections, r.rosterSize, r.capacity)
	return r
}

// Observe sets the roster gauges from a catalog snapshot.
func (r *Recorder) Observe(activityStor stor.ActivityStor) {
	for name, a := range activityStor.ListActivities() {
		r.rosterSize.WithLabelValues(name).Set(float64(len(a.Participants)))
		r.capacity.WithLabelValues(name).Set(float64(a.MaxParticipants))
	}
}

func (r *Recorder) RosterChanged(change registration.Change) {
	switch change.Kind {
	case registration.ChangeSignedUp:
		r.signups.WithLabelValues(change.Activity).Inc()
	case registration.ChangeUnregistered:
		r.unregistrations.WithLabelValues(change.Activity).Inc()
	}

	r.rosterSize.WithLabelValues(change.Activity).Set(float64(len(change.Participants)))
}

// Rejected counts a failed request. operation is "signup" or "unregister".
func (r *Recorder) Rejected(operation string, err error) {
	r.rejections.WithLabelValues(operation, Reason(err)).Inc()
}

// Reason gives a stable label for a registration error.
func Reason(err error) string {
	switch {
	case errors.Is(err, stor.ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, stor.ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, stor.ErrNotRegistered):
		return "not_registered"
	case errors.Is(err, stor.ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, registration.ErrInvalidEmail):
		return "invalid_email"
	default:
		return "other"
	}
}
