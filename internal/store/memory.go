package store

import (
	"strings"
	"sync"

	"github.com/justsurfingit/Campus-Job-Board/internal/apperr"
	"github.com/justsurfingit/Campus-Job-Board/internal/models"
)

// MemoryJobStore keeps jobs in an append-only slice. The RWMutex makes an
// append atomic with respect to readers: a job is either fully present or
// fully absent, never half-built.
type MemoryJobStore struct {
	mu   sync.RWMutex
	jobs []models.Job
}

func NewMemoryJobStore(seed []models.Job) *MemoryJobStore {
	s := &MemoryJobStore{}
	s.jobs = append(s.jobs, seed...)
	return s
}

func (s *MemoryJobStore) All() ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Job, len(s.jobs))
	copy(out, s.jobs)
	return out, nil
}

func (s *MemoryJobStore) FindByID(id int64) (*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			job := s.jobs[i]
			return &job, nil
		}
	}
	return nil, apperr.New(apperr.CodeNotFound, "Job not found", nil)
}

func (s *MemoryJobStore) Append(job models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
	return nil
}

type MemoryApplicationStore struct {
	mu   sync.RWMutex
	apps []models.Application
}

func NewMemoryApplicationStore(seed []models.Application) *MemoryApplicationStore {
	s := &MemoryApplicationStore{}
	s.apps = append(s.apps, seed...)
	return s
}

func (s *MemoryApplicationStore) All() ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Application, len(s.apps))
	copy(out, s.apps)
	return out, nil
}

func (s *MemoryApplicationStore) Append(app models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps = append(s.apps, app)
	return nil
}

type MemoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserStore(seed []models.User) *MemoryUserStore {
	s := &MemoryUserStore{}
	s.users = append(s.users, seed...)
	return s
}

func (s *MemoryUserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, apperr.New(apperr.CodeNotFound, "user not found", nil)
}

func (s *MemoryUserStore) FindByID(id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, apperr.New(apperr.CodeNotFound, "user not found", nil)
}

func (s *MemoryUserStore) Create(user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = int64(len(s.users) + 1)
	s.users = append(s.users, user)
	return &user, nil
}
