package clientapimodels

import (
	"strings"

	"github.com/pkg/errors"

	apimodels "labo-isometeer-backend/models/api"
)

type ClientData struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	TaxID       string `json:"tax_id"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	ContactName string `json:"contact_name"`
}

func (r ClientData) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return errors.New("el código del cliente es obligatorio")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("la razón social es obligatoria")
	}
	return nil
}

type ClientView struct {
	ClientData
	ID string `json:"id"`
}

type ClientListRequest struct {
	apimodels.Pagination
	Search string `json:"search"`
}
