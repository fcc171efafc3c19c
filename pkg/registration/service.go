// Package registration applies the signup rules on top of the activity
// catalog. It is the only writer of roster state.
package registration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/mergington/activities/pkg/actmodel"
	"github.com/mergington/activities/pkg/clog"
	"github.com/mergington/activities/pkg/lock"
	"github.com/mergington/activities/pkg/stor"
)

var ErrInvalidEmail = errors.New("invalid email")

type Service struct {
	activityStor stor.ActivityStor
	locker       *lock.NameLocker
	listeners    []ChangeListener
}

// NewService creates one lock per catalog activity. The catalog's names
// never change, so unknown names are rejected before any lock is taken.
func NewService(activityStor stor.ActivityStor, listeners ...ChangeListener) *Service {
	return &Service{
		activityStor: activityStor,
		locker:       lock.NewNameLocker(activityStor.ActivityNames()...),
		listeners:    listeners,
	}
}

// SignUp adds email to the roster of activityName. The lookup, duplicate check,
// capacity check and append happen under the activity's lock, so concurrent
// signups for the same pair cannot both succeed.
func (s *Service) SignUp(activityName, email string) (*actmodel.Confirmation, error) {
	if err := s.checkKnown(activityName); err != nil {
		registryLog(activityName, email).Debugf("signup rejected: %s", err)
		return nil, err
	}

	err := s.locker.WithLock(activityName, func() error {
		activity, err := s.activityStor.GetActivityByName(activityName)
		switch {
		case err != nil:
			return err
		case isBlank(email):
			return fmt.Errorf("%w: email is required", ErrInvalidEmail)
		case activity.HasParticipant(email):
			return fmt.Errorf("%w: %s in %s", stor.ErrAlreadyRegistered, email, activityName)
		case activity.IsFull():
			return fmt.Errorf("%w: %s has %d of %d", stor.ErrCapacityExceeded, activityName, len(activity.Participants), activity.MaxParticipants)
		}

		if activity, err = s.activityStor.AddParticipant(activityName, email); err != nil {
			return err
		}

		s.notify(newChange(ChangeSignedUp, *activity, email))
		return nil
	})

	if err != nil {
		registryLog(activityName, email).Debugf("signup rejected: %s", err)
		return nil, err
	}

	registryLog(activityName, email).Info("signed up")
	return &actmodel.Confirmation{ActivityName: activityName, Email: email}, nil
}

// Unregister removes email from the roster of activityName.
func (s *Service) Unregister(activityName, email string) (*actmodel.Confirmation, error) {
	if err := s.checkKnown(activityName); err != nil {
		registryLog(activityName, email).Debugf("unregister rejected: %s", err)
		return nil, err
	}

	err := s.locker.WithLock(activityName, func() error {
		activity, err := s.activityStor.GetActivityByName(activityName)
		switch {
		case err != nil:
			return err
		case isBlank(email):
			return fmt.Errorf("%w: email is required", ErrInvalidEmail)
		case !activity.HasParticipant(email):
			return fmt.Errorf("%w: %s in %s", stor.ErrNotRegistered, email, activityName)
		}

		if activity, err = s.activityStor.RemoveParticipant(activityName, email); err != nil {
			return err
		}

		s.notify(newChange(ChangeUnregistered, *activity, email))
		return nil
	})

	if err != nil {
		registryLog(activityName, email).Debugf("unregister rejected: %s", err)
		return nil, err
	}

	registryLog(activityName, email).Info("unregistered")
	return &actmodel.Confirmation{ActivityName: activityName, Email: email}, nil
}

func (s *Service) checkKnown(activityName string) error {
	_, err := s.activityStor.GetActivityByName(activityName)
	return err
}

// notify runs with the activity lock held so listeners see changes to one
// activity in order. Listeners must not block.
func (s *Service) notify(change Change) {
	for _, l := range s.listeners {
		l.RosterChanged(change)
	}
}

func isBlank(email string) bool {
	return strings.TrimSpace(email) == ""
}

func registryLog(activityName, email string) *log.Entry {
	return clog.UsingCtx(clog.RegistryCtx).WithFields(log.Fields{
		"activity": activityName,
		"email":    email,
	})
}
