package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventregistration/internal/domain"
	"eventregistration/internal/metrics"
)

type attendeeService struct {
	userRepo       domain.UserRepository
	eventRepo      domain.EventRepository
	attendanceRepo domain.AttendanceRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAttendeeService returns an AttendeeService. Storage calls are bounded by timeout;
// notification sends run on the caller's context.
func NewAttendeeService(
	userRepo domain.UserRepository,
	eventRepo domain.EventRepository,
	attendanceRepo domain.AttendanceRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.AttendeeService {
	return &attendeeService{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		attendanceRepo: attendanceRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *attendeeService) Register(ctx context.Context, email, eventID string) (*domain.RegistrationResult, error) {
	if email == "" {
		metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		return nil, &domain.FieldError{Field: "email"}
	}

	created, event, err := s.recordAttendance(ctx, email, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}
	if created {
		metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	} else {
		metrics.RegistrationsTotal.WithLabelValues("already_registered").Inc()
	}

	// Storage may accept several spellings of one id; report the stored one.
	eventID = event.ID
	result := &domain.RegistrationResult{
		Attendance: domain.NewAttendance(email, eventID),
		Created:    created,
	}

	// Both messages are attempted even when the first one fails.
	noticeErr := s.emailService.NotifyRegistration(ctx, &domain.OperatorNoticeEmailData{Email: email, EventID: eventID})
	inviteErr := s.emailService.SendCalendarInvite(ctx, &domain.CalendarInviteEmailData{Email: email, Event: event})
	if err := errors.Join(noticeErr, inviteErr); err != nil {
		s.logger.WarnContext(ctx, "registration kept, notification failed",
			"email", email, "event_id", eventID, "error", err)
		if !errors.Is(err, domain.ErrNotification) {
			err = fmt.Errorf("%w: %w", domain.ErrNotification, err)
		}
		return result, err
	}

	s.logger.InfoContext(ctx, "attendee registered", "email", email, "event_id", eventID, "created", created)
	return result, nil
}

// recordAttendance creates the user if needed and inserts the attendance. created is
// false when the pair already existed.
func (s *attendeeService) recordAttendance(ctx context.Context, email, eventID string) (bool, *domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.userRepo.Create(ctx, domain.NewUser(email)); err != nil && !errors.Is(err, domain.ErrDuplicate) {
		return false, nil, fmt.Errorf("add user: %w", err)
	}

	created := true
	if err := s.attendanceRepo.Create(ctx, domain.NewAttendance(email, eventID)); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			created = false
		case errors.Is(err, domain.ErrDanglingReference):
			return false, nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		default:
			return false, nil, fmt.Errorf("add attendance: %w", err)
		}
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if errors.Is(err, domain.ErrNotFound) {
		// Deleted between the insert and this lookup. The attendance row stays, like
		// any attendance of a deleted event.
		s.logger.WarnContext(ctx, "event deleted during registration, attendance kept",
			"email", email, "event_id", eventID, "created", created)
		return false, nil, fmt.Errorf("%w: event %s deleted during registration: %w",
			domain.ErrValidation, eventID, domain.ErrDanglingReference)
	}
	if err != nil {
		return false, nil, fmt.Errorf("get event: %w", err)
	}
	return created, event, nil
}

func (s *attendeeService) Unregister(ctx context.Context, email, eventID string) error {
	if err := s.removeAttendance(ctx, email, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.UnregistrationsTotal.WithLabelValues("not_found").Inc()
			return domain.ErrNotFound
		}
		metrics.UnregistrationsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.UnregistrationsTotal.WithLabelValues("removed").Inc()

	if err := s.emailService.NotifyUnregistration(ctx, &domain.OperatorNoticeEmailData{Email: email, EventID: eventID}); err != nil {
		s.logger.WarnContext(ctx, "unregistration kept, notification failed",
			"email", email, "event_id", eventID, "error", err)
		if !errors.Is(err, domain.ErrNotification) {
			err = fmt.Errorf("%w: %w", domain.ErrNotification, err)
		}
		return err
	}

	s.logger.InfoContext(ctx, "attendee unregistered", "email", email, "event_id", eventID)
	return nil
}

func (s *attendeeService) removeAttendance(ctx context.Context, email, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.attendanceRepo.Delete(ctx, email, eventID); err != nil {
		return fmt.Errorf("remove attendance: %w", err)
	}
	return nil
}

func (s *attendeeService) ListUserEvents(ctx context.Context, email string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.attendanceRepo.ListEventsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list user events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *attendeeService) CountAttendances(ctx context.Context, email string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	n, err := s.attendanceRepo.CountByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("count attendances: %w", err)
	}
	return n, nil
}

func (s *attendeeService) ListAttendees(ctx context.Context, eventID string) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	users, err := s.attendanceRepo.ListAttendees(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}
