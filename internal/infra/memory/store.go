// Package memory keeps every aggregate in process memory. Transactions are
// serialised by one mutex and rolled back from a snapshot on error.
package memory

import (
	"sync"
	"time"

	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type Store struct {
	mu sync.RWMutex

	users    map[uint]models.User
	boats    map[uint]models.Boat
	bookings map[string]models.Booking
	periods  map[uint]models.BoatAvailability
	reviews  map[uint]models.Review
	audit    []models.AuditLog

	nextPeriodID uint
	nextReviewID uint
	nextUserID   uint
	nextBoatID   uint
	nextAuditID  uint

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:    map[uint]models.User{},
		boats:    map[uint]models.Boat{},
		bookings: map[string]models.Booking{},
		periods:  map[uint]models.BoatAvailability{},
		reviews:  map[uint]models.Review{},
		now:      time.Now,
	}
}

type snapshot struct {
	users    map[uint]models.User
	boats    map[uint]models.Boat
	bookings map[string]models.Booking
	periods  map[uint]models.BoatAvailability
	reviews  map[uint]models.Review

	nextPeriodID uint
	nextReviewID uint
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		users:        copyMap(s.users),
		boats:        copyMap(s.boats),
		bookings:     copyMap(s.bookings),
		periods:      copyMap(s.periods),
		reviews:      copyMap(s.reviews),
		nextPeriodID: s.nextPeriodID,
		nextReviewID: s.nextReviewID,
	}
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.boats = snap.boats
	s.bookings = snap.bookings
	s.periods = snap.periods
	s.reviews = snap.reviews
	s.nextPeriodID = snap.nextPeriodID
	s.nextReviewID = snap.nextReviewID
}

// within runs fn under the write lock and undoes its writes when it fails.
func (s *Store) within(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (s *Store) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUser(u)
}

func (s *Store) addUser(u models.User) models.User {
	if u.ID == 0 {
		s.nextUserID++
		u.ID = s.nextUserID
	} else if u.ID > s.nextUserID {
		s.nextUserID = u.ID
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = u
	return u
}

func (s *Store) AddBoat(b models.Boat) models.Boat {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == 0 {
		s.nextBoatID++
		b.ID = s.nextBoatID
	} else if b.ID > s.nextBoatID {
		s.nextBoatID = b.ID
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = s.now()
	}
	s.boats[b.ID] = b
	return b
}

// FindUserByEmail looks a user up by exact email.
func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userByEmail(email)
}

func (s *Store) userByEmail(email string) (models.User, bool) {
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// --------------------------------------------------
// Inspection (tests)
// --------------------------------------------------

func (s *Store) Boat(id uint) (models.Boat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.boats[id]
	return b, ok
}

func (s *Store) BookingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

func (s *Store) PeriodCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.periods)
}

// AllBookings returns a copy of every stored booking.
func (s *Store) AllBookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out
}

// --------------------------------------------------
// Shared lookups (caller holds the lock)
// --------------------------------------------------

func (s *Store) liveBoat(id uint) (models.Boat, bool) {
	b, ok := s.boats[id]
	if !ok || b.DeletedAt.Valid {
		return models.Boat{}, false
	}
	return b, true
}

func (s *Store) withRelations(b models.Booking) models.Booking {
	if boat, ok := s.boats[b.BoatID]; ok {
		boat.Owner = s.users[boat.OwnerID]
		b.Boat = boat
	}
	b.Renter = s.users[b.RenterID]
	return b
}
