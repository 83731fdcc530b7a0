// Package store persists users, trucks and fuel entries.
package store

import (
	"context"
	"errors"

	"github.com/micronlogivdev/iftaway/internal/model"
)

// ErrNotFound is returned when a record does not exist or belongs to another user
var ErrNotFound = errors.New("record not found")

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// Store defines the interface for all database operations used by the services
type Store interface {
	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, userID int) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// Fuel entry operations
	ListEntries(ctx context.Context, userID int) ([]model.FuelEntry, error)
	GetEntry(ctx context.Context, userID, entryID int) (*model.FuelEntry, error)
	CreateEntry(ctx context.Context, entry *model.FuelEntry) error
	CreateEntries(ctx context.Context, entries []model.FuelEntry) error
	UpdateEntry(ctx context.Context, entry *model.FuelEntry) error
	SetEntryIgnored(ctx context.Context, userID, entryID int, ignored bool) (*model.FuelEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID int) error

	// Truck operations
	ListTrucks(ctx context.Context, userID int) ([]model.Truck, error)
	CreateTruck(ctx context.Context, truck *model.Truck) error
	DeleteTruck(ctx context.Context, userID, truckID int) error
}
