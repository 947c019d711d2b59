package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/justsurfingit/Campus-Job-Board/internal/apperr"
	"github.com/justsurfingit/Campus-Job-Board/internal/models"
)

// Gorm-backed implementations of the same store interfaces, for deployments
// that configure a DATABASE_URL. Ordering by primary key preserves insertion
// order because ids are assigned from a monotonic source.

type GormJobStore struct {
	db *gorm.DB
}

func NewGormJobStore(db *gorm.DB) *GormJobStore {
	return &GormJobStore{db: db}
}

func (s *GormJobStore) All() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.db.Order("id").Find(&jobs).Error; err != nil {
		return nil, apperr.New(apperr.CodeInternal, "failed to list jobs", err)
	}
	return jobs, nil
}

func (s *GormJobStore) FindByID(id int64) (*models.Job, error) {
	var job models.Job
	err := s.db.First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.CodeNotFound, "Job not found", nil)
	}
	if err != nil {
		return nil, apperr.New(apperr.CodeInternal, "failed to fetch job", err)
	}
	return &job, nil
}

func (s *GormJobStore) Append(job models.Job) error {
	if err := s.db.Create(&job).Error; err != nil {
		return apperr.New(apperr.CodeInternal, "failed to store job", err)
	}
	return nil
}

type GormApplicationStore struct {
	db *gorm.DB
}

func NewGormApplicationStore(db *gorm.DB) *GormApplicationStore {
	return &GormApplicationStore{db: db}
}

func (s *GormApplicationStore) All() ([]models.Application, error) {
	var apps []models.Application
	if err := s.db.Order("id").Find(&apps).Error; err != nil {
		return nil, apperr.New(apperr.CodeInternal, "failed to list applications", err)
	}
	return apps, nil
}

func (s *GormApplicationStore) Append(app models.Application) error {
	if err := s.db.Create(&app).Error; err != nil {
		return apperr.New(apperr.CodeInternal, "failed to store application", err)
	}
	return nil
}

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "lower(email) = lower(?)", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.CodeNotFound, "user not found", nil)
	}
	if err != nil {
		return nil, apperr.New(apperr.CodeInternal, "failed to fetch user", err)
	}
	return &user, nil
}

func (s *GormUserStore) FindByID(id int64) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.CodeNotFound, "user not found", nil)
	}
	if err != nil {
		return nil, apperr.New(apperr.CodeInternal, "failed to fetch user", err)
	}
	return &user, nil
}

func (s *GormUserStore) Create(user models.User) (*models.User, error) {
	if err := s.db.Create(&user).Error; err != nil {
		return nil, apperr.New(apperr.CodeInternal, "failed to store user", err)
	}
	return &user, nil
}
