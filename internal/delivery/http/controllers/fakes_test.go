package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events          []*domain.Event
	event           *domain.Event
	err             error
	createdID       string
	lastCreateEvent *domain.Event
	lastID          string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	f.lastCreateEvent = event
	if f.err != nil {
		return f.err
	}
	event.ID = f.createdID
	return nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

// fakeAttendeeService implements domain.AttendeeService for handler tests.
type fakeAttendeeService struct {
	registerResult *domain.RegistrationResult
	err            error
	events         []*domain.Event
	users          []*domain.User
	count          int
	lastEmail      string
	lastEventID    string
	calls          int
}

func (f *fakeAttendeeService) Register(ctx context.Context, email, eventID string) (*domain.RegistrationResult, error) {
	f.calls++
	f.lastEmail, f.lastEventID = email, eventID
	return f.registerResult, f.err
}

func (f *fakeAttendeeService) Unregister(ctx context.Context, email, eventID string) error {
	f.calls++
	f.lastEmail, f.lastEventID = email, eventID
	return f.err
}

func (f *fakeAttendeeService) ListUserEvents(ctx context.Context, email string) ([]*domain.Event, error) {
	f.calls++
	f.lastEmail = email
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeAttendeeService) CountAttendances(ctx context.Context, email string) (int, error) {
	f.calls++
	f.lastEmail = email
	return f.count, f.err
}

func (f *fakeAttendeeService) ListAttendees(ctx context.Context, eventID string) ([]*domain.User, error) {
	f.calls++
	f.lastEventID = eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

// decodeEnvelope decodes the response envelope and, when dest is non-nil, its data.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dest any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if dest != nil {
		require.Nil(t, envelope.Error, "success response must have error nil")
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(dataBytes, dest))
	}
	return envelope
}
