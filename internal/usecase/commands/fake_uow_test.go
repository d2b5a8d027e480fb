//go:build unit

package commands

import (
	"context"
	"sync"
	"time"

	"guri24/internal/domain/booking"
	"guri24/internal/domain/inquiry"
	"guri24/internal/domain/property"
	"guri24/internal/domain/user"
	"guri24/internal/infra"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/usecase/queries"
	"guri24/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type outboxEntry struct {
	Topic   string
	Payload []byte
}

// memoryStore is an in-memory ledger. Writes staged by a transaction become
// visible only when the transaction function returns nil.
type memoryStore struct {
	mu         sync.Mutex
	locks      map[uuid.UUID]*sync.Mutex
	properties map[uuid.UUID]*shared.PropertySnapshot
	slugs      map[string]bool
	created    []*property.Property
	bookings   []*booking.Booking
	users      map[uuid.UUID]*user.User
	inquiries  map[uuid.UUID]*inquiry.Inquiry
	outbox     []outboxEntry
	views      map[uuid.UUID]int64

	// test hooks
	createBookingErr error
	createInquiryErr error
	slugRaceOnce     map[string]bool
	afterOverlap     func()
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		locks:        map[uuid.UUID]*sync.Mutex{},
		properties:   map[uuid.UUID]*shared.PropertySnapshot{},
		slugs:        map[string]bool{},
		users:        map[uuid.UUID]*user.User{},
		inquiries:    map[uuid.UUID]*inquiry.Inquiry{},
		views:        map[uuid.UUID]int64{},
		slugRaceOnce: map[string]bool{},
	}
}

func (s *memoryStore) addProperty(p *shared.PropertySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties[p.ID] = p
}

func (s *memoryStore) addUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID()] = u
}

// addListing stores a full listing as if it had been created earlier.
func (s *memoryStore) addListing(p *property.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, p)
	s.slugs[p.Slug()] = true
}

func (s *memoryStore) listing(id uuid.UUID) *property.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.created {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

func (s *memoryStore) addInquiry(i *inquiry.Inquiry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inquiries[i.ID()] = i
}

func (s *memoryStore) confirmedBookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *memoryStore) outboxTopics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	topics := make([]string, len(s.outbox))
	for i, e := range s.outbox {
		topics[i] = e.Topic
	}
	return topics
}

func (s *memoryStore) lockFor(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func notFound(entity string) error {
	return infra.WrapRepoErr(entity+" not found", pgx.ErrNoRows, infra.KindNotFound)
}

type memoryUoW struct {
	store *memoryStore
}

func newMemoryUoW(store *memoryStore) *memoryUoW {
	return &memoryUoW{store: store}
}

func (u *memoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memoryTx{store: u.store}
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (u *memoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memoryUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memoryUoW) CommandReads() shared.CommandReads {
	return &memoryReads{store: u.store}
}

type memoryTx struct {
	store *memoryStore
	held  []*sync.Mutex

	bookings   []*booking.Booking
	properties []*property.Property
	revised    []*property.Property
	users      []*user.User
	saved      []*user.User
	inquiries  []*inquiry.Inquiry
	verified   map[uuid.UUID]time.Time
	logins     map[uuid.UUID]time.Time
	views      []uuid.UUID
	outbox     []outboxEntry
}

func (t *memoryTx) releaseLocks() {
	for _, l := range t.held {
		l.Unlock()
	}
	t.held = nil
}

func (t *memoryTx) commit() {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, t.bookings...)
	for _, p := range t.properties {
		s.created = append(s.created, p)
		s.slugs[p.Slug()] = true
	}
	for _, p := range t.revised {
		for i, old := range s.created {
			if old.ID() == p.ID() {
				delete(s.slugs, old.Slug())
				s.created[i] = p
			}
		}
		s.slugs[p.Slug()] = true
	}
	for _, u := range t.users {
		s.users[u.ID()] = u
	}
	for _, u := range t.saved {
		s.users[u.ID()] = u
	}
	for _, i := range t.inquiries {
		s.inquiries[i.ID()] = i
	}
	for id, at := range t.verified {
		if u, ok := s.users[id]; ok {
			_ = u.VerifyEmail(*u.VerificationToken(), at)
		}
	}
	for id, at := range t.logins {
		if u, ok := s.users[id]; ok {
			u.RecordLogin(at)
		}
	}
	for _, id := range t.views {
		s.views[id]++
	}
	s.outbox = append(s.outbox, t.outbox...)
}

func (t *memoryTx) Bookings() shared.BookingRepository           { return &memoryBookings{tx: t} }
func (t *memoryTx) Properties() shared.PropertyRepository        { return &memoryProperties{tx: t} }
func (t *memoryTx) Users() shared.UserRepository                 { return &memoryUsers{tx: t} }
func (t *memoryTx) Inquiries() shared.InquiryRepository          { return &memoryInquiries{tx: t} }
func (t *memoryTx) Notifications() shared.NotificationRepository { return &memoryNotifications{tx: t} }
func (t *memoryTx) Reads() shared.CommandReads                   { return &memoryReads{store: t.store} }
func (t *memoryTx) DB() sqlc.DBTX                                { return nil }

type memoryBookings struct{ tx *memoryTx }

func (r *memoryBookings) LockProperty(_ context.Context, _ sqlc.DBTX, propertyID uuid.UUID) error {
	l := r.tx.store.lockFor(propertyID)
	l.Lock()
	r.tx.held = append(r.tx.held, l)
	return nil
}

func (r *memoryBookings) ConfirmedOverlapping(_ context.Context, _ sqlc.DBTX, propertyID uuid.UUID, stay booking.Stay) ([]booking.Stay, error) {
	s := r.tx.store
	s.mu.Lock()
	var out []booking.Stay
	for _, b := range s.bookings {
		if b.PropertyID() == propertyID && b.Status() == booking.StatusConfirmed && b.Stay().Overlaps(stay) {
			out = append(out, b.Stay())
		}
	}
	hook := s.afterOverlap
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (r *memoryBookings) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if err := r.tx.store.createBookingErr; err != nil {
		return err
	}
	r.tx.bookings = append(r.tx.bookings, b)
	return nil
}

type memoryProperties struct{ tx *memoryTx }

// slugRaced reports a unique violation once for slugs registered in slugRaceOnce.
func (r *memoryProperties) slugRaced(slug string) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.slugRaceOnce[slug] {
		return nil
	}
	delete(s.slugRaceOnce, slug)
	s.slugs[slug] = true
	return infra.WrapRepoErr("failed to write property",
		&pgconn.PgError{Code: "23505", ConstraintName: "properties_slug_key"})
}

func (r *memoryProperties) Create(_ context.Context, _ sqlc.DBTX, p *property.Property) error {
	if err := r.slugRaced(p.Slug()); err != nil {
		return err
	}
	r.tx.properties = append(r.tx.properties, p)
	return nil
}

func (r *memoryProperties) Update(_ context.Context, _ sqlc.DBTX, p *property.Property) error {
	if err := r.slugRaced(p.Slug()); err != nil {
		return err
	}
	r.tx.revised = append(r.tx.revised, p)
	return nil
}

func (r *memoryProperties) UpdateStatus(_ context.Context, _ sqlc.DBTX, p *property.Property) error {
	r.tx.revised = append(r.tx.revised, p)
	return nil
}

func (r *memoryProperties) IncrementViews(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	r.tx.views = append(r.tx.views, id)
	return nil
}

type memoryUsers struct{ tx *memoryTx }

func (r *memoryUsers) Create(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	r.tx.users = append(r.tx.users, u)
	return nil
}

func (r *memoryUsers) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	if r.tx.logins == nil {
		r.tx.logins = map[uuid.UUID]time.Time{}
	}
	r.tx.logins[userID] = at
	return nil
}

func (r *memoryUsers) MarkEmailVerified(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	if r.tx.verified == nil {
		r.tx.verified = map[uuid.UUID]time.Time{}
	}
	r.tx.verified[userID] = at
	return nil
}

func (r *memoryUsers) SaveVerificationToken(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	r.tx.saved = append(r.tx.saved, u)
	return nil
}

func (r *memoryUsers) SaveResetToken(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	r.tx.saved = append(r.tx.saved, u)
	return nil
}

func (r *memoryUsers) SavePassword(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	r.tx.saved = append(r.tx.saved, u)
	return nil
}

type memoryInquiries struct{ tx *memoryTx }

func (r *memoryInquiries) Create(_ context.Context, _ sqlc.DBTX, i *inquiry.Inquiry) error {
	if err := r.tx.store.createInquiryErr; err != nil {
		return err
	}
	r.tx.inquiries = append(r.tx.inquiries, i)
	return nil
}

func (r *memoryInquiries) UpdateStatus(_ context.Context, _ sqlc.DBTX, i *inquiry.Inquiry) error {
	r.tx.inquiries = append(r.tx.inquiries, i)
	return nil
}

type memoryNotifications struct{ tx *memoryTx }

func (r *memoryNotifications) CreateJob(_ context.Context, _ sqlc.DBTX, topic string, payload []byte, _ time.Time) error {
	r.tx.outbox = append(r.tx.outbox, outboxEntry{Topic: topic, Payload: payload})
	return nil
}

func (r *memoryNotifications) ClaimDue(context.Context, sqlc.DBTX, time.Time, int) ([]shared.NotificationJob, error) {
	return nil, nil
}

func (r *memoryNotifications) MarkSent(context.Context, sqlc.DBTX, uuid.UUID, time.Time) error {
	return nil
}

func (r *memoryNotifications) Reschedule(context.Context, sqlc.DBTX, uuid.UUID, string, time.Time, time.Time) error {
	return nil
}

func (r *memoryNotifications) MarkFailed(context.Context, sqlc.DBTX, uuid.UUID, string, time.Time) error {
	return nil
}

type memoryReads struct {
	store *memoryStore
}

func (r *memoryReads) PropertyForAdmission(_ context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.properties[id]
	if !ok {
		return nil, notFound("property")
	}
	return p, nil
}

func (r *memoryReads) PropertyForUpdate(_ context.Context, id uuid.UUID) (*property.Property, error) {
	p := r.store.listing(id)
	if p == nil {
		return nil, notFound("property")
	}
	cp := *p
	return &cp, nil
}

func (r *memoryReads) PropertyOwner(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	p := r.store.listing(id)
	if p == nil {
		return uuid.Nil, notFound("property")
	}
	return p.AgentID(), nil
}

func (r *memoryReads) InquiryForUpdate(_ context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i, ok := r.store.inquiries[id]
	if !ok {
		return nil, notFound("inquiry")
	}
	cp := *i
	return &cp, nil
}

func (r *memoryReads) SlugExists(_ context.Context, slug string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.slugs[slug], nil
}

func (r *memoryReads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return u, nil
}

func (r *memoryReads) UserByEmail(_ context.Context, email user.Email) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, notFound("user")
}

func (r *memoryReads) UserByEmailForUpdate(ctx context.Context, email user.Email) (*user.User, error) {
	u, err := r.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	cp := *u
	return &cp, nil
}

func (r *memoryReads) UserByResetToken(_ context.Context, token string) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if t := u.ResetToken(); t != nil && *t == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, notFound("user")
}

func (r *memoryReads) UserByVerificationToken(_ context.Context, token string) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if t := u.VerificationToken(); t != nil && *t == token {
			// hand out a copy so a rolled back verification leaves the stored user untouched
			snapshot := *u
			return &snapshot, nil
		}
	}
	return nil, notFound("user")
}

func (r *memoryReads) EmailExists(ctx context.Context, email user.Email) (bool, error) {
	_, err := r.UserByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// memoryBookingReader answers read-after-write lookups from the store.
type memoryBookingReader struct {
	store *memoryStore
}

func (r *memoryBookingReader) GetForUser(ctx context.Context, actorID, id uuid.UUID) (*queries.BookingView, error) {
	v, err := r.GetByIDSystem(ctx, id)
	if err != nil || v.UserID != actorID {
		return nil, queries.ErrBookingNotFound
	}
	return v, nil
}

func (r *memoryBookingReader) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	for _, b := range r.store.confirmedBookings() {
		if b.ID() == id {
			return viewFromBooking(b), nil
		}
	}
	return nil, queries.ErrBookingNotFound
}

func (r *memoryBookingReader) ListByUser(context.Context, uuid.UUID) ([]*queries.BookingView, error) {
	return nil, nil
}

func (r *memoryBookingReader) Availability(context.Context, uuid.UUID) (*queries.AvailabilityView, error) {
	return nil, nil
}

type recordingInvalidator struct {
	mu  sync.Mutex
	ids []uuid.UUID
	err error
}

func (r *recordingInvalidator) Invalidate(_ context.Context, propertyID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, propertyID)
	return r.err
}

func (r *recordingInvalidator) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}
