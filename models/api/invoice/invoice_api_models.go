package invoiceapimodels

import (
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"labo-isometeer-backend/models"
	apimodels "labo-isometeer-backend/models/api"
)

const DateLayout = "2006-01-02"

type InvoiceData struct {
	Number      string  `json:"number"`
	WorkOrderID string  `json:"work_order_id"`
	Date        string  `json:"date"`
	DueDate     string  `json:"due_date"`
	Amount      float64 `json:"amount"`
	IvaPercent  float64 `json:"iva_percent"`
	Notes       string  `json:"notes"`
}

func (r InvoiceData) Validate() error {
	if r.Number == "" {
		return errors.New("la factura necesita un número")
	}
	if r.WorkOrderID == "" {
		return errors.New("la factura necesita una OT")
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return errors.New("la fecha debe tener formato AAAA-MM-DD")
	}
	if r.DueDate != "" {
		if _, err := time.Parse(DateLayout, r.DueDate); err != nil {
			return errors.New("el vencimiento debe tener formato AAAA-MM-DD")
		}
	}
	if r.Amount < 0 {
		return errors.New("el importe no puede ser negativo")
	}
	if r.IvaPercent < 0 || r.IvaPercent > 100 {
		return errors.New("el IVA debe estar entre 0 y 100")
	}
	return nil
}

type InvoiceView struct {
	ID          string  `json:"id"`
	Number      string  `json:"number"`
	WorkOrderID string  `json:"work_order_id"`
	OTKey       string  `json:"ot_key"`
	ClientID    string  `json:"client_id"`
	ClientName  string  `json:"client_name"`
	Date        string  `json:"date"`
	DueDate     string  `json:"due_date,omitempty"`
	Amount      float64 `json:"amount"`
	IvaPercent  float64 `json:"iva_percent"`
	IvaAmount   float64 `json:"iva_amount"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
	StatusName  string  `json:"status_name"`
	Notes       string  `json:"notes,omitempty"`
}

type InvoiceFilter struct {
	apimodels.Pagination
	Status   string `json:"status"`
	ClientID string `json:"client_id"`
}

func (r InvoiceFilter) Validate() error {
	if r.Status != "" && !models.InvoiceStatus(r.Status).IsValid() {
		return errors.Errorf("estado de factura desconocido: %s", r.Status)
	}
	return nil
}

type StatusChangeRequest struct {
	Status string `json:"status"`
}

func (r StatusChangeRequest) Validate() error {
	if !models.InvoiceStatus(r.Status).IsValid() {
		return errors.Errorf("estado de factura desconocido: %s", r.Status)
	}
	return nil
}

type SendRequest struct {
	Email string `json:"email"`
}

func (r SendRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("el correo tiene un formato inválido")
	}
	return nil
}
