package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/micronlogivdev/iftaway/internal/model"
)

// GormStore implements Store on top of gorm
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a gorm backed store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

func (s *GormStore) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormStore) GetUser(ctx context.Context, userID int) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// ListEntries 获取用户全部加油记录，按时间倒序
func (s *GormStore) ListEntries(ctx context.Context, userID int) ([]model.FuelEntry, error) {
	var entries []model.FuelEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_time DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (s *GormStore) GetEntry(ctx context.Context, userID, entryID int) (*model.FuelEntry, error) {
	var entry model.FuelEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &entry, nil
}

func (s *GormStore) CreateEntry(ctx context.Context, entry *model.FuelEntry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

// CreateEntries 批量写入，任一失败则整体回滚
func (s *GormStore) CreateEntries(ctx context.Context, entries []model.FuelEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(entries, 100).Error; err != nil {
			return fmt.Errorf("bulk insert entries: %w", err)
		}
		return nil
	})
}

func (s *GormStore) UpdateEntry(ctx context.Context, entry *model.FuelEntry) error {
	entry.LastEditedAt = time.Now()
	result := s.db.WithContext(ctx).
		Model(&model.FuelEntry{}).
		Where("id = ? AND user_id = ?", entry.ID, entry.UserID).
		Updates(map[string]interface{}{
			"truck_number":     entry.TruckNumber,
			"date_time":        entry.DateTime,
			"odometer":         entry.Odometer,
			"city":             entry.City,
			"state":            entry.State,
			"fuel_type":        entry.FuelType,
			"custom_fuel_type": entry.CustomFuelType,
			"amount":           entry.Amount,
			"cost":             entry.Cost,
			"receipt_url":      entry.ReceiptURL,
			"is_ignored":       entry.IsIgnored,
			"last_edited_at":   entry.LastEditedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("update entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) SetEntryIgnored(ctx context.Context, userID, entryID int, ignored bool) (*model.FuelEntry, error) {
	result := s.db.WithContext(ctx).
		Model(&model.FuelEntry{}).
		Where("id = ? AND user_id = ?", entryID, userID).
		Updates(map[string]interface{}{
			"is_ignored":     ignored,
			"last_edited_at": time.Now(),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("set entry ignored: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetEntry(ctx, userID, entryID)
}

func (s *GormStore) DeleteEntry(ctx context.Context, userID, entryID int) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&model.FuelEntry{})
	if result.Error != nil {
		return fmt.Errorf("delete entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListTrucks(ctx context.Context, userID int) ([]model.Truck, error) {
	var trucks []model.Truck
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("number ASC").
		Find(&trucks).Error
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}
	return trucks, nil
}

func (s *GormStore) CreateTruck(ctx context.Context, truck *model.Truck) error {
	return s.db.WithContext(ctx).Create(truck).Error
}

func (s *GormStore) DeleteTruck(ctx context.Context, userID, truckID int) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", truckID, userID).
		Delete(&model.Truck{})
	if result.Error != nil {
		return fmt.Errorf("delete truck: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
