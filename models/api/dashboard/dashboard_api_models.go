package dashboardapimodels

import (
	"github.com/pkg/errors"
)

type CurrentOT struct {
	WorkOrderID   string `json:"work_order_id"`
	OTKey         string `json:"ot_key"`
	ActivityType  string `json:"activity_type"`
	ActivityState string `json:"activity_state"`
}

type WorkloadRecord struct {
	Name               string      `json:"name"`
	AssignedCount      int         `json:"assigned_count"`
	ActiveCount        int         `json:"active_count"`
	CompletedCount     int         `json:"completed_count"`
	PendingCount       int         `json:"pending_count"`
	InProgressCount    int         `json:"in_progress_count"`
	FinishedCount      int         `json:"finished_count"`
	WorkloadPercentage int         `json:"workload_percentage"`
	CurrentOTs         []CurrentOT `json:"current_ots"`
}

type StatsView struct {
	OrdersByStatus   map[string]int     `json:"orders_by_status"`
	InvoiceByStatus  map[string]float64 `json:"invoice_totals_by_status"`
	ClientCount      int64              `json:"client_count"`
	OrderCount       int64              `json:"order_count"`
	ActiveUserCount  int64              `json:"active_user_count"`
	PendingInvoices  int64              `json:"pending_invoices"`
	OverdueInvoices  int64              `json:"overdue_invoices"`
}

type OrderOpRequest struct {
	Name string `json:"name"`
}

func (r OrderOpRequest) Validate() error {
	if r.Name == "" {
		return errors.New("falta el nombre del empleado")
	}
	return nil
}
