package model

import (
	"time"
)

// JurisdictionRow 辖区里程/燃油/费用汇总
type JurisdictionRow struct {
	Jurisdiction string  `json:"jurisdiction"`
	TotalMiles   float64 `json:"totalMiles"`
	TotalFuel    float64 `json:"totalFuel"`
	TotalCost    float64 `json:"totalCost"`
}

// TaxReport is the per-jurisdiction allocation table plus fleet MPG
type TaxReport struct {
	Rows []JurisdictionRow `json:"rows"`
	MPG  float64           `json:"mpg"`
}

// TruckEfficiency 车辆油耗排名项
type TruckEfficiency struct {
	Vehicle   string  `json:"vehicle"`
	MakeModel string  `json:"makeModel,omitempty"`
	MPG       float64 `json:"mpg"`
}

// EfficiencyInsight 油耗排名
type EfficiencyInsight struct {
	Top    []TruckEfficiency `json:"top"`
	Bottom []TruckEfficiency `json:"bottom"`
}

// JurisdictionPrice 辖区平均油价
type JurisdictionPrice struct {
	Jurisdiction   string  `json:"jurisdiction"`
	PricePerGallon float64 `json:"pricePerGallon"`
}

// CostOptimization 油价优化建议
type CostOptimization struct {
	Cheapest  []JurisdictionPrice `json:"cheapest"`
	Expensive []JurisdictionPrice `json:"expensive"`
}

// OdometerRollback is an adjacent entry pair whose odometer went backwards
type OdometerRollback struct {
	Vehicle     string  `json:"vehicle"`
	FromEntryID int     `json:"fromEntryId"`
	ToEntryID   int     `json:"toEntryId"`
	Delta       float64 `json:"delta"`
}

// AnomalyInsight 异常记录
type AnomalyInsight struct {
	HighCost          []FuelEntry        `json:"highCost"`
	OffHours          []FuelEntry        `json:"offHours"`
	OdometerRollbacks []OdometerRollback `json:"odometerRollbacks"`
}

// Insights 车队洞察
type Insights struct {
	Efficiency       EfficiencyInsight `json:"efficiency"`
	CostOptimization CostOptimization  `json:"costOptimization"`
	Anomalies        AnomalyInsight    `json:"anomalies"`
	Forecast         float64           `json:"forecast"`
}

// ReportResult is everything derived for one reporting window
type ReportResult struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	TaxReport TaxReport `json:"taxReport"`
	Insights  Insights  `json:"insights"`
}

// PeriodStats 月度统计
type PeriodStats struct {
	Miles    float64 `json:"miles"`
	Expenses float64 `json:"expenses"`
	MPG      float64 `json:"mpg"`
	Gallons  float64 `json:"gallons"`
}

// MonthlyCost 月度费用
type MonthlyCost struct {
	Month time.Time `json:"month"`
	Name  string    `json:"name"`
	Cost  float64   `json:"cost"`
}

// DashboardStats 仪表盘统计
type DashboardStats struct {
	CurrentMonth  PeriodStats        `json:"currentMonth"`
	PreviousMonth PeriodStats        `json:"previousMonth"`
	Trends        map[string]float64 `json:"trends"`
	MonthlyCosts  []MonthlyCost      `json:"monthlyCosts"`
}
