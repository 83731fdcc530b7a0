package model

import (
	"time"
)

// FuelType 燃油类别
type FuelType string

const (
	// FuelTypeDiesel is the taxed fuel; its gallons feed MPG
	FuelTypeDiesel FuelType = "diesel"
	// FuelTypeDEF is diesel exhaust fluid, exempt from fuel tax
	FuelTypeDEF FuelType = "def"
	// FuelTypeCustom carries a free-text label in CustomFuelType
	FuelTypeCustom FuelType = "custom"
)

// IsTaxed reports whether gallons of this type count toward fuel economy
func (t FuelType) IsTaxed() bool {
	return t == FuelTypeDiesel
}

// Valid reports whether t is one of the known fuel types
func (t FuelType) Valid() bool {
	switch t {
	case FuelTypeDiesel, FuelTypeDEF, FuelTypeCustom:
		return true
	}
	return false
}

// FuelEntry 加油记录
type FuelEntry struct {
	ID             int       `json:"id" gorm:"primaryKey"`
	UserID         int       `json:"userId" gorm:"column:user_id;not null;index"`
	TruckNumber    string    `json:"truckNumber" gorm:"column:truck_number;type:varchar(50);not null"`
	DateTime       time.Time `json:"dateTime" gorm:"column:date_time;not null"`
	Odometer       float64   `json:"odometer" gorm:"not null"`
	City           string    `json:"city" gorm:"type:varchar(100);not null"`
	State          string    `json:"state" gorm:"type:varchar(10);not null"`
	FuelType       FuelType  `json:"fuelType" gorm:"column:fuel_type;type:varchar(50);not null"`
	CustomFuelType string    `json:"customFuelType,omitempty" gorm:"column:custom_fuel_type;type:varchar(100)"`
	Amount         float64   `json:"amount" gorm:"not null"`
	Cost           float64   `json:"cost" gorm:"not null"`
	ReceiptURL     string    `json:"receiptUrl,omitempty" gorm:"column:receipt_url;type:text"`
	IsIgnored      bool      `json:"isIgnored" gorm:"column:is_ignored;not null;default:false"`
	CreatedAt      time.Time `json:"createdAt" gorm:"not null;default:now()"`
	LastEditedAt   time.Time `json:"lastEditedAt" gorm:"column:last_edited_at;not null;default:now()"`
}

func (FuelEntry) TableName() string {
	return "fuel_entries"
}

// FuelLabel returns the display name of the entry's fuel
func (e FuelEntry) FuelLabel() string {
	if e.FuelType == FuelTypeCustom {
		return e.CustomFuelType
	}
	return string(e.FuelType)
}

// FuelEntryRequest 创建/更新加油记录请求
type FuelEntryRequest struct {
	TruckNumber    string    `json:"truckNumber" binding:"required"`
	DateTime       time.Time `json:"dateTime" binding:"required"`
	Odometer       float64   `json:"odometer" binding:"gte=0"`
	City           string    `json:"city" binding:"required"`
	State          string    `json:"state" binding:"required,max=10"`
	FuelType       FuelType  `json:"fuelType" binding:"required,oneof=diesel def custom"`
	CustomFuelType string    `json:"customFuelType"`
	Amount         float64   `json:"amount" binding:"gte=0"`
	Cost           float64   `json:"cost" binding:"gte=0"`
	ReceiptURL     string    `json:"receiptUrl"`
	IsIgnored      bool      `json:"isIgnored"`
}

// ToEntry converts the request into an entry owned by userID
func (r *FuelEntryRequest) ToEntry(userID int) *FuelEntry {
	return &FuelEntry{
		UserID:         userID,
		TruckNumber:    r.TruckNumber,
		DateTime:       r.DateTime,
		Odometer:       r.Odometer,
		City:           r.City,
		State:          r.State,
		FuelType:       r.FuelType,
		CustomFuelType: r.CustomFuelType,
		Amount:         r.Amount,
		Cost:           r.Cost,
		ReceiptURL:     r.ReceiptURL,
		IsIgnored:      r.IsIgnored,
	}
}

// IgnoreEntryRequest 忽略加油记录请求
type IgnoreEntryRequest struct {
	IsIgnored bool `json:"isIgnored"`
}
