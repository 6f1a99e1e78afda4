package dbmodels

import (
	"time"

	"labo-isometeer-backend/models"
)

type WorkOrder struct {
	BaseModel
	// clave legible fecha+tipo+cliente+secuencia (ej. 20250901-CA-ACME-003)
	OTKey        string        `gorm:"type:varchar(40);uniqueIndex"`
	Date         time.Time     `gorm:"index"`
	Type         models.OTType `gorm:"type:varchar(30);index"`
	ClientID     string        `gorm:"type:varchar(36);index"`
	Client       *Client
	Title        string           `gorm:"type:varchar(255)"`
	Auth         models.AuthState `gorm:"index"`
	ContractFile string           `gorm:"type:varchar(255)"`
	Activities   []Activity       `gorm:"constraint:OnDelete:CASCADE"`
}

type Activity struct {
	BaseModel
	WorkOrderID string               `gorm:"type:varchar(36);index"`
	Type        string               `gorm:"type:varchar(100)"`
	State       models.ActivityState `gorm:"type:varchar(30)"`
	Assignees   []User               `gorm:"many2many:activity_assignees"`
}

// AssigneeNames devuelve los nombres visibles tal como los consume
// el tablero de carga de trabajo.
func (a Activity) AssigneeNames() []string {
	names := make([]string, 0, len(a.Assignees))
	for _, u := range a.Assignees {
		names = append(names, u.GetFullName())
	}
	return names
}
