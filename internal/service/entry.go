// 加油记录与车辆管理服务

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/micronlogivdev/iftaway/internal/export"
	"github.com/micronlogivdev/iftaway/internal/model"
	"github.com/micronlogivdev/iftaway/internal/store"
)

// ErrInvalidEntry is returned for entries that pass binding but are inconsistent
var ErrInvalidEntry = errors.New("invalid fuel entry")

// ImportFormat selects the parser of an uploaded import file
type ImportFormat string

const (
	ImportCSV  ImportFormat = "csv"
	ImportXLSX ImportFormat = "xlsx"
)

// ImportResult 批量导入结果
type ImportResult struct {
	Imported int               `json:"imported"`
	Entries  []model.FuelEntry `json:"entries"`
}

// EntryService manages fuel entries and trucks
type EntryService struct {
	store  store.Store
	events EventPublisher
}

// NewEntryService creates a new entry service
func NewEntryService(st store.Store, events EventPublisher) *EntryService {
	if events == nil {
		events = NopPublisher{}
	}
	return &EntryService{store: st, events: events}
}

// ListEntries returns every entry of the user, newest first
func (s *EntryService) ListEntries(ctx context.Context, userID int) ([]model.FuelEntry, error) {
	return s.store.ListEntries(ctx, userID)
}

// CreateEntry 创建加油记录
func (s *EntryService) CreateEntry(ctx context.Context, userID int, req *model.FuelEntryRequest) (*model.FuelEntry, error) {
	entry := req.ToEntry(userID)
	if err := normalizeEntry(entry); err != nil {
		return nil, err
	}

	if err := s.store.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.publish(ctx, NewEvent(EventEntryCreated, userID, entry))
	return entry, nil
}

// UpdateEntry 更新加油记录
func (s *EntryService) UpdateEntry(ctx context.Context, userID, entryID int, req *model.FuelEntryRequest) (*model.FuelEntry, error) {
	entry := req.ToEntry(userID)
	entry.ID = entryID
	if err := normalizeEntry(entry); err != nil {
		return nil, err
	}

	if err := s.store.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}

	updated, err := s.store.GetEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, NewEvent(EventEntryUpdated, userID, updated))
	return updated, nil
}

// SetIgnored excludes an entry from, or returns it to, every report
func (s *EntryService) SetIgnored(ctx context.Context, userID, entryID int, ignored bool) (*model.FuelEntry, error) {
	entry, err := s.store.SetEntryIgnored(ctx, userID, entryID, ignored)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, NewEvent(EventEntryIgnored, userID, entry))
	return entry, nil
}

// DeleteEntry 删除加油记录
func (s *EntryService) DeleteEntry(ctx context.Context, userID, entryID int) error {
	if err := s.store.DeleteEntry(ctx, userID, entryID); err != nil {
		return err
	}

	s.publish(ctx, NewEvent(EventEntryDeleted, userID, map[string]int{"id": entryID}))
	return nil
}

// Import parses an uploaded file and stores all of its rows in one
// transaction. A single bad row rejects the whole file.
func (s *EntryService) Import(ctx context.Context, userID int, format ImportFormat, r io.Reader) (*ImportResult, error) {
	var (
		entries []model.FuelEntry
		err     error
	)
	switch format {
	case ImportXLSX:
		entries, err = export.ReadEntriesXLSX(r, userID)
	default:
		entries, err = export.ReadEntriesCSV(r, userID)
	}
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateEntries(ctx, entries); err != nil {
		return nil, fmt.Errorf("import entries: %w", err)
	}

	log.Printf("[Import] User %d imported %d entries", userID, len(entries))
	s.publish(ctx, NewEvent(EventEntriesImported, userID, map[string]int{"count": len(entries)}))

	return &ImportResult{Imported: len(entries), Entries: entries}, nil
}

// ListTrucks 获取车辆列表
func (s *EntryService) ListTrucks(ctx context.Context, userID int) ([]model.Truck, error) {
	return s.store.ListTrucks(ctx, userID)
}

// CreateTruck 创建车辆
func (s *EntryService) CreateTruck(ctx context.Context, userID int, req *model.CreateTruckRequest) (*model.Truck, error) {
	truck := &model.Truck{
		UserID:    userID,
		Number:    strings.TrimSpace(req.Number),
		MakeModel: strings.TrimSpace(req.MakeModel),
	}
	if err := s.store.CreateTruck(ctx, truck); err != nil {
		return nil, fmt.Errorf("create truck: %w", err)
	}
	return truck, nil
}

// DeleteTruck 删除车辆
func (s *EntryService) DeleteTruck(ctx context.Context, userID, truckID int) error {
	return s.store.DeleteTruck(ctx, userID, truckID)
}

func (s *EntryService) publish(ctx context.Context, event Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("[Events] Failed to publish %s for user %d: %v", event.Type, event.UserID, err)
	}
}

func normalizeEntry(e *model.FuelEntry) error {
	e.TruckNumber = strings.TrimSpace(e.TruckNumber)
	e.City = strings.TrimSpace(e.City)
	e.State = strings.ToUpper(strings.TrimSpace(e.State))
	e.CustomFuelType = strings.TrimSpace(e.CustomFuelType)

	if e.FuelType == model.FuelTypeCustom && e.CustomFuelType == "" {
		return fmt.Errorf("%w: customFuelType is required for custom fuel", ErrInvalidEntry)
	}
	if e.FuelType != model.FuelTypeCustom {
		e.CustomFuelType = ""
	}
	if e.TruckNumber == "" || e.State == "" {
		return fmt.Errorf("%w: truckNumber and state are required", ErrInvalidEntry)
	}
	return nil
}
