package directory

import (
	"errors"
	"sort"
	"sync"
	"time"

	"medreport-assistant/internal/domain/entity"
	"medreport-assistant/internal/storage"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service owns the directory collections: user accounts, the static doctor
// catalog, appointments, and saved reports. The in-memory collections are
// the source of truth; the injected store is a mirror, hydrated once at
// construction and written back after every mutation.
type Service struct {
	mu    sync.Mutex
	store storage.Store
	log   *logrus.Logger
	now   func() time.Time

	accounts     []entity.UserAccount
	appointments []entity.Appointment
	reports      []entity.SavedReport
	doctors      []entity.Doctor
}

func NewService(store storage.Store, log *logrus.Logger) *Service {
	s := &Service{
		store:   store,
		log:     log,
		now:     time.Now,
		doctors: seedDoctors(),
	}

	s.store.Load(storage.KeyAccounts, &s.accounts)
	s.store.Load(storage.KeyAppointments, &s.appointments)
	s.store.Load(storage.KeyReports, &s.reports)

	return s
}

// Signup registers a new account. The stored record carries a bcrypt hash
// of the password; the returned account never does.
func (s *Service) Signup(profile entity.UserAccount, password string) (*entity.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Email == profile.Email {
			return nil, ErrDuplicateAccount
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	profile.PasswordHash = string(hashedPassword)
	s.accounts = append(s.accounts, profile)
	s.store.Save(storage.KeyAccounts, s.accounts)

	s.log.Infof("Account created: email=%s, role=%s", profile.Email, profile.Role)
	return profile.WithoutHash(), nil
}

// Login verifies credentials. Unknown email and wrong password both map to
// ErrInvalidCredentials so the response does not reveal which occurred.
func (s *Service) Login(email, password string) (*entity.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		return account.WithoutHash(), nil
	}

	return nil, ErrInvalidCredentials
}

// Account returns the stored account for email, without its hash. Used by
// the session layer to resolve token claims back to a profile.
func (s *Service) Account(email string) (*entity.UserAccount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Email == email {
			return account.WithoutHash(), true
		}
	}

	return nil, false
}

// newestFirst orders records by descending creation time. Listings always
// come back newest first.
func newestFirst[T any](items []T, createdAt func(T) time.Time) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(out[i]).After(createdAt(out[j]))
	})
	return out
}
