package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"eventregistration/internal/domain"
)

// fakeStore is an in-memory backing store shared by the fake repositories so that
// event, user and attendance state stay consistent with each other.
type fakeStore struct {
	mu          sync.Mutex
	events      map[string]*domain.Event
	users       map[string]bool
	attendances map[domain.Attendance]bool
	nextID      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:      make(map[string]*domain.Event),
		users:       make(map[string]bool),
		attendances: make(map[domain.Attendance]bool),
		nextID:      1,
	}
}

// eventKey maps numeric spellings of an id ("01", "1") to one key, as Postgres does.
func eventKey(id string) string {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > 0 {
		return strconv.FormatInt(n, 10)
	}
	return id
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	store *fakeStore
	err   error // if set, every call returns this error
}

func newFakeEventRepo(store *fakeStore) *fakeEventRepo {
	return &fakeEventRepo{store: store}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	e.ID = fmt.Sprintf("%d", f.store.nextID)
	f.store.nextID++
	cp := *e
	f.store.events[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if e, ok := f.store.events[eventKey(id)]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.sortedEvents(func(*domain.Event) bool { return true }), nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if _, ok := f.store.events[eventKey(id)]; !ok {
		return domain.ErrNotFound
	}
	delete(f.store.events, eventKey(id))
	return nil
}

// sortedEvents must be called with mu held.
func (s *fakeStore) sortedEvents(keep func(*domain.Event) bool) []*domain.Event {
	out := []*domain.Event{}
	for _, e := range s.events {
		if keep(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].ID) != len(out[j].ID) {
			return len(out[i].ID) < len(out[j].ID)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	store *fakeStore
	err   error
}

func newFakeUserRepo(store *fakeStore) *fakeUserRepo {
	return &fakeUserRepo{store: store}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if f.store.users[u.Email] {
		return domain.ErrDuplicate
	}
	f.store.users[u.Email] = true
	return nil
}

// fakeAttendanceRepo is an in-memory AttendanceRepository for tests.
type fakeAttendanceRepo struct {
	store     *fakeStore
	createErr error
	deleteErr error

	// afterCreate runs after a successful insert, outside the store lock.
	afterCreate func()
}

func newFakeAttendanceRepo(store *fakeStore) *fakeAttendanceRepo {
	return &fakeAttendanceRepo{store: store}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a *domain.Attendance) error {
	if f.createErr != nil {
		return f.createErr
	}
	if err := f.insert(a); err != nil {
		return err
	}
	if f.afterCreate != nil {
		f.afterCreate()
	}
	return nil
}

func (f *fakeAttendanceRepo) insert(a *domain.Attendance) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	key := domain.Attendance{Email: a.Email, EventID: eventKey(a.EventID)}
	if !f.store.users[key.Email] {
		return domain.ErrDanglingReference
	}
	if _, ok := f.store.events[key.EventID]; !ok {
		return domain.ErrDanglingReference
	}
	if f.store.attendances[key] {
		return domain.ErrDuplicate
	}
	f.store.attendances[key] = true
	return nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, email, eventID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	key := domain.Attendance{Email: email, EventID: eventKey(eventID)}
	if !f.store.attendances[key] {
		return domain.ErrNotFound
	}
	delete(f.store.attendances, key)
	return nil
}

func (f *fakeAttendanceRepo) ListAttendees(ctx context.Context, eventID string) ([]*domain.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	eventID = eventKey(eventID)
	if _, ok := f.store.events[eventID]; !ok {
		return nil, domain.ErrNotFound
	}
	out := []*domain.User{}
	for a := range f.store.attendances {
		if a.EventID == eventID {
			out = append(out, domain.NewUser(a.Email))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (f *fakeAttendanceRepo) CountByEmail(ctx context.Context, email string) (int, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	n := 0
	for a := range f.store.attendances {
		if a.Email == email {
			n++
		}
	}
	return n, nil
}

func (f *fakeAttendanceRepo) ListEventsByEmail(ctx context.Context, email string) ([]*domain.Event, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.sortedEvents(func(e *domain.Event) bool {
		return f.store.attendances[domain.Attendance{Email: email, EventID: e.ID}]
	}), nil
}

// fakeEmailService records every notification it is asked to send.
type fakeEmailService struct {
	mu             sync.Mutex
	registrations  []domain.OperatorNoticeEmailData
	unregistration []domain.OperatorNoticeEmailData
	invites        []domain.CalendarInviteEmailData
	noticeErr      error
	inviteErr      error
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{}
}

func (f *fakeEmailService) NotifyRegistration(ctx context.Context, data *domain.OperatorNoticeEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registrations = append(f.registrations, *data)
	return f.noticeErr
}

func (f *fakeEmailService) NotifyUnregistration(ctx context.Context, data *domain.OperatorNoticeEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unregistration = append(f.unregistration, *data)
	return f.noticeErr
}

func (f *fakeEmailService) SendCalendarInvite(ctx context.Context, data *domain.CalendarInviteEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invites = append(f.invites, *data)
	return f.inviteErr
}

// fakeMailer records sent messages.
type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to, subject, html, text string
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, html: html, text: text})
	return nil
}

// fakeRenderer renders "<name>" subjects and a body listing the data's fields.
type fakeRenderer struct {
	err  error
	data []any
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	f.data = append(f.data, data)
	if f.err != nil {
		return "", "", "", f.err
	}
	var body string
	switch d := data.(type) {
	case *domain.CalendarInviteEmailData:
		body = fmt.Sprintf("%s %s %s %s %s", d.Email, d.Event.Name, d.Event.Location, d.Event.StartTimestamp, d.Event.EndTimestamp)
	case *domain.OperatorNoticeEmailData:
		body = fmt.Sprintf("%s %s", d.Email, d.EventID)
	default:
		body = fmt.Sprintf("%+v", data)
	}
	return name, "<p>" + body + "</p>", body, nil
}
