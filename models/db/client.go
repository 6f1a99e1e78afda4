package dbmodels

import (
	clientapimodels "labo-isometeer-backend/models/api/client"
)

type Client struct {
	BaseModel
	// código corto usado en la clave de OT (ej. "ACME")
	Code        string `gorm:"type:varchar(20);uniqueIndex"`
	Name        string `gorm:"type:varchar(255);uniqueIndex"`
	TaxID       string `gorm:"type:varchar(30)"`
	Email       string `gorm:"type:varchar(255)"`
	Phone       string `gorm:"type:varchar(20)"`
	Address     string `gorm:"type:varchar(255)"`
	ContactName string `gorm:"type:varchar(150)"`
}

func (r Client) ToModel() clientapimodels.ClientView {
	return clientapimodels.ClientView{
		ID: r.ID,
		ClientData: clientapimodels.ClientData{
			Code:        r.Code,
			Name:        r.Name,
			TaxID:       r.TaxID,
			Email:       r.Email,
			Phone:       r.Phone,
			Address:     r.Address,
			ContactName: r.ContactName,
		},
	}
}
