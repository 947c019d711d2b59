// Package store holds the authoritative collections behind the API. Each
// component receives the interface it needs at construction, so tests can
// supply an isolated store per test instead of sharing process-wide state.
package store

import "github.com/justsurfingit/Campus-Job-Board/internal/models"

type JobStore interface {
	// All returns the jobs in insertion order.
	All() ([]models.Job, error)
	FindByID(id int64) (*models.Job, error)
	Append(job models.Job) error
}

type ApplicationStore interface {
	All() ([]models.Application, error)
	Append(app models.Application) error
}

type UserStore interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id int64) (*models.User, error)
	// Create assigns the user id and returns the stored record.
	Create(user models.User) (*models.User, error)
}
