package dbmodels

import (
	"math"
	"time"

	"labo-isometeer-backend/models"
)

type Invoice struct {
	BaseModel
	Number      string `gorm:"type:varchar(30);uniqueIndex"`
	WorkOrderID string `gorm:"type:varchar(36);index"`
	WorkOrder   *WorkOrder
	ClientID    string `gorm:"type:varchar(36);index"`
	Client      *Client
	Date        time.Time
	DueDate     time.Time
	Amount      float64
	IvaPercent  float64
	Status      models.InvoiceStatus `gorm:"type:varchar(30);index"`
	Notes       string               `gorm:"type:varchar(512)"`
}

func (r Invoice) IvaAmount() float64 {
	return round2(r.Amount * r.IvaPercent / 100)
}

func (r Invoice) Total() float64 {
	return round2(r.Amount + r.IvaAmount())
}

func (r Invoice) IsOverdue(now time.Time) bool {
	return r.Status == models.InvoiceStatusEmitida &&
		!r.DueDate.IsZero() && r.DueDate.Before(now)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
