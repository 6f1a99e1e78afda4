package dbmodels

import (
	"math"

	"labo-isometeer-backend/models"
)

type Budget struct {
	BaseModel
	Code     string `gorm:"type:varchar(30);uniqueIndex"`
	ClientID string `gorm:"type:varchar(36);index"`
	Client   *Client
	Title    string              `gorm:"type:varchar(255)"`
	Status   models.BudgetStatus `gorm:"type:varchar(30);index"`
	// OT creada al aprobar el presupuesto, si corresponde
	WorkOrderID string       `gorm:"type:varchar(36)"`
	Items       []BudgetItem `gorm:"constraint:OnDelete:CASCADE"`
}

type BudgetItem struct {
	BaseModel
	BudgetID  string `gorm:"type:varchar(36);index"`
	Concept   string `gorm:"type:varchar(255)"`
	Quantity  float64
	UnitPrice float64
}

func (i BudgetItem) Subtotal() float64 {
	return math.Round(i.Quantity*i.UnitPrice*100) / 100
}

func (r Budget) Total() float64 {
	var total float64
	for _, item := range r.Items {
		total += item.Subtotal()
	}
	return math.Round(total*100) / 100
}
