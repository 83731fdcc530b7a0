package model

import (
	"time"
)

// Truck 车辆信息
type Truck struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	UserID    int       `json:"userId" gorm:"column:user_id;not null;index"`
	Number    string    `json:"number" gorm:"type:varchar(50);not null"`
	MakeModel string    `json:"makeModel" gorm:"column:make_model;type:varchar(255);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;default:now()"`
}

func (Truck) TableName() string {
	return "trucks"
}

// CreateTruckRequest 创建车辆请求
type CreateTruckRequest struct {
	Number    string `json:"number" binding:"required,max=50"`
	MakeModel string `json:"makeModel" binding:"required"`
}
