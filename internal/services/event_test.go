package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventregistration/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	tests := []struct {
		name           string
		setup          func() *fakeEventRepo
		event          *domain.Event
		wantErr        bool
		wantValidation bool
	}{
		{
			name:  "success",
			setup: func() *fakeEventRepo { return newFakeEventRepo(newFakeStore()) },
			event: domain.NewEvent("New_event", "Sky", "2020", "2021"),
		},
		{
			name:           "missing location",
			setup:          func() *fakeEventRepo { return newFakeEventRepo(newFakeStore()) },
			event:          domain.NewEvent("New_event", "", "2020", "2021"),
			wantErr:        true,
			wantValidation: true,
		},
		{
			name: "repo error",
			setup: func() *fakeEventRepo {
				r := newFakeEventRepo(newFakeStore())
				r.err = errors.New("db error")
				return r
			},
			event:   domain.NewEvent("New_event", "Sky", "2020", "2021"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := tt.setup()
			svc := NewEventService(repo, timeout)
			err := svc.CreateEvent(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantValidation, errors.Is(err, domain.ErrValidation))
				assert.Empty(t, repo.store.events)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, tt.event.ID)

			got, err := svc.GetEvent(ctx, tt.event.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.event, got)
		})
	}
}

func TestEventService_GetEvent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo(newFakeStore())
	svc := NewEventService(repo, 5*time.Second)

	ev := domain.NewEvent("New_event", "Sky", "2020", "2021")
	require.NoError(t, svc.CreateEvent(ctx, ev))

	t.Run("found", func(t *testing.T) {
		got, err := svc.GetEvent(ctx, ev.ID)
		require.NoError(t, err)
		assert.Equal(t, "New_event", got.Name)
		assert.Equal(t, "Sky", got.Location)
		assert.Equal(t, "2020", got.StartTimestamp)
		assert.Equal(t, "2021", got.EndTimestamp)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetEvent(ctx, "999")
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("storage error is wrapped", func(t *testing.T) {
		broken := newFakeEventRepo(newFakeStore())
		broken.err = domain.ErrStorageUnavailable
		_, err := NewEventService(broken, time.Second).GetEvent(ctx, "1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrStorageUnavailable))
		assert.Contains(t, err.Error(), "get event")
	})
}

func TestEventService_ListEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(newFakeStore()), time.Second)
		events, err := svc.ListEvents(ctx)
		require.NoError(t, err)
		require.NotNil(t, events)
		assert.Empty(t, events)
	})

	t.Run("ordered by id", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(newFakeStore()), time.Second)
		for _, name := range []string{"a", "b", "c"} {
			require.NoError(t, svc.CreateEvent(ctx, domain.NewEvent(name, "Sky", "2020", "2021")))
		}
		events, err := svc.ListEvents(ctx)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{events[0].Name, events[1].Name, events[2].Name})
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		eventID      string
		wantNotFound bool
	}{
		{name: "success", eventID: "1"},
		{name: "event not found", eventID: "42", wantNotFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeEventRepo(newFakeStore())
			svc := NewEventService(repo, time.Second)
			require.NoError(t, svc.CreateEvent(ctx, domain.NewEvent("New_event", "Sky", "2020", "2021")))

			err := svc.DeleteEvent(ctx, tt.eventID)
			if tt.wantNotFound {
				require.True(t, errors.Is(err, domain.ErrNotFound))
				return
			}
			require.NoError(t, err)
			_, err = svc.GetEvent(ctx, tt.eventID)
			require.True(t, errors.Is(err, domain.ErrNotFound), "event should be deleted")
		})
	}
}

func TestEventService_DeleteEvent_KeepsAttendances(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	events := NewEventService(newFakeEventRepo(store), time.Second)
	ev := domain.NewEvent("New_event", "Sky", "2020", "2021")
	require.NoError(t, events.CreateEvent(ctx, ev))

	users := newFakeUserRepo(store)
	attendances := newFakeAttendanceRepo(store)
	require.NoError(t, users.Create(ctx, domain.NewUser("test@test.com")))
	require.NoError(t, attendances.Create(ctx, domain.NewAttendance("test@test.com", ev.ID)))

	require.NoError(t, events.DeleteEvent(ctx, ev.ID))

	n, err := attendances.CountByEmail(ctx, "test@test.com")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
