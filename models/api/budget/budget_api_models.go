package budgetapimodels

import (
	"github.com/pkg/errors"

	apimodels "labo-isometeer-backend/models/api"
)

type BudgetItemData struct {
	Concept   string  `json:"concept"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (r BudgetItemData) Validate() error {
	if r.Concept == "" {
		return errors.New("el ítem necesita un concepto")
	}
	if r.Quantity <= 0 {
		return errors.New("la cantidad debe ser mayor a cero")
	}
	if r.UnitPrice < 0 {
		return errors.New("el precio unitario no puede ser negativo")
	}
	return nil
}

type BudgetData struct {
	Code     string           `json:"code"`
	ClientID string           `json:"client_id"`
	Title    string           `json:"title"`
	Items    []BudgetItemData `json:"items"`
}

func (r BudgetData) Validate() error {
	if r.Code == "" {
		return errors.New("el presupuesto necesita un código")
	}
	if r.ClientID == "" {
		return errors.New("el presupuesto necesita un cliente")
	}
	if len(r.Items) == 0 {
		return errors.New("el presupuesto necesita al menos un ítem")
	}
	for _, item := range r.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type BudgetItemView struct {
	ID        string  `json:"id"`
	Concept   string  `json:"concept"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type BudgetView struct {
	ID          string           `json:"id"`
	Code        string           `json:"code"`
	ClientID    string           `json:"client_id"`
	ClientName  string           `json:"client_name"`
	Title       string           `json:"title"`
	Status      string           `json:"status"`
	StatusName  string           `json:"status_name"`
	WorkOrderID string           `json:"work_order_id,omitempty"`
	Total       float64          `json:"total"`
	Items       []BudgetItemView `json:"items"`
}

type BudgetListRequest struct {
	apimodels.Pagination
	Status   string `json:"status"`
	ClientID string `json:"client_id"`
}

// ApproveRequest permite crear la OT borrador al aprobar.
type ApproveRequest struct {
	CreateWorkOrder bool   `json:"create_work_order"`
	WorkOrderType   string `json:"work_order_type"`
}
