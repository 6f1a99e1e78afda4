package dashboardhandler

import (
	"bytes"
	"time"

	log "github.com/sirupsen/logrus"

	"labo-isometeer-backend/db"
	clientstore "labo-isometeer-backend/lib/client/store"
	displayorder "labo-isometeer-backend/lib/display-order"
	displayorderstore "labo-isometeer-backend/lib/display-order/store"
	xlsexport "labo-isometeer-backend/lib/export/xls"
	invoicestore "labo-isometeer-backend/lib/invoice/store"
	usersstore "labo-isometeer-backend/lib/users/store"
	"labo-isometeer-backend/lib/workload"
	workorderstore "labo-isometeer-backend/lib/workorder/store"
	"labo-isometeer-backend/models"
	dashboardapimodels "labo-isometeer-backend/models/api/dashboard"
)

type Provider interface {
	GetWorkload(userID string) (list []dashboardapimodels.WorkloadRecord, err error)
	ExportWorkload(userID string) (file *bytes.Buffer, err error)
	GetStats() (stats dashboardapimodels.StatsView, err error)
	MoveUp(userID, name string) error
	MoveDown(userID, name string) error
	MoveToTop(userID, name string) error
	MoveToBottom(userID, name string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		otStore:      workorderstore.NewInstance(db.DB),
		invoiceStore: invoicestore.NewInstance(db.DB),
		clientStore:  clientstore.NewInstance(db.DB),
		usersStore:   usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	otStore      workorderstore.Provider
	invoiceStore invoicestore.Provider
	clientStore  clientstore.Provider
	usersStore   usersstore.Provider
}

// GetWorkload arma el tablero completo: clasifica y agrega todas las
// OT y aplica el orden de filas guardado por el usuario.
func (i impl) GetWorkload(userID string) (list []dashboardapimodels.WorkloadRecord, err error) {
	records, err := i.aggregate(userID)
	if err != nil {
		return nil, err
	}
	list = make([]dashboardapimodels.WorkloadRecord, 0, len(records))
	for _, rec := range records {
		list = append(list, toAPIRecord(rec))
	}
	return list, nil
}

func (i impl) ExportWorkload(userID string) (file *bytes.Buffer, err error) {
	list, err := i.GetWorkload(userID)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportWorkload(list)
}

func (i impl) GetStats() (stats dashboardapimodels.StatsView, err error) {
	recs, err := i.otStore.ListAll()
	if err != nil {
		log.WithError(err).Error("error obteniendo las OT para las estadísticas")
		return dashboardapimodels.StatsView{}, err
	}
	stats.OrdersByStatus = map[string]int{}
	for _, order := range workload.FromWorkOrders(recs) {
		stats.OrdersByStatus[string(workload.Classify(order))]++
	}
	stats.OrderCount = int64(len(recs))

	stats.InvoiceByStatus = map[string]float64{}
	now := time.Now()
	for _, status := range []models.InvoiceStatus{
		models.InvoiceStatusBorrador, models.InvoiceStatusEmitida,
		models.InvoiceStatusPagada, models.InvoiceStatusAnulada,
	} {
		invoices, lErr := i.invoiceStore.ListByStatus(status)
		if lErr != nil {
			return dashboardapimodels.StatsView{}, lErr
		}
		for _, inv := range invoices {
			stats.InvoiceByStatus[string(status)] += inv.Total()
			if inv.IsOverdue(now) {
				stats.OverdueInvoices++
			}
		}
		if status == models.InvoiceStatusEmitida {
			stats.PendingInvoices = int64(len(invoices))
		}
	}

	stats.ClientCount, err = i.clientStore.ListCount("")
	if err != nil {
		return dashboardapimodels.StatsView{}, err
	}
	stats.ActiveUserCount, err = i.usersStore.GetListCount("")
	if err != nil {
		return dashboardapimodels.StatsView{}, err
	}
	return stats, nil
}

func (i impl) MoveUp(userID, name string) error {
	return i.manager(userID).MoveUp(name)
}

func (i impl) MoveDown(userID, name string) error {
	return i.manager(userID).MoveDown(name)
}

func (i impl) MoveToTop(userID, name string) error {
	return i.manager(userID).MoveToTop(name)
}

func (i impl) MoveToBottom(userID, name string) error {
	return i.manager(userID).MoveToBottom(name)
}

func (i impl) manager(userID string) *displayorder.Manager {
	return displayorder.NewManager(displayorderstore.NewInstance(db.DB, userID))
}

func (i impl) aggregate(userID string) ([]workload.Record, error) {
	recs, err := i.otStore.ListAll()
	if err != nil {
		log.WithError(err).Error("error obteniendo las OT para el tablero")
		return nil, err
	}
	records := workload.Aggregate(workload.FromWorkOrders(recs))

	manager := i.manager(userID)
	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Name)
	}
	if _, err = manager.Resolve(names); err != nil {
		log.WithError(err).Error("error resolviendo el orden del tablero")
		return nil, err
	}
	return manager.Apply(records), nil
}

func toAPIRecord(rec workload.Record) dashboardapimodels.WorkloadRecord {
	out := dashboardapimodels.WorkloadRecord{
		Name:               rec.Name,
		AssignedCount:      rec.AssignedCount,
		ActiveCount:        rec.ActiveCount,
		CompletedCount:     rec.CompletedCount,
		PendingCount:       rec.PendingCount,
		InProgressCount:    rec.InProgressCount,
		FinishedCount:      rec.FinishedCount,
		WorkloadPercentage: rec.WorkloadPercentage,
		CurrentOTs:         []dashboardapimodels.CurrentOT{},
	}
	for _, ot := range rec.CurrentOTs {
		out.CurrentOTs = append(out.CurrentOTs, dashboardapimodels.CurrentOT{
			WorkOrderID:   ot.WorkOrderID,
			OTKey:         ot.OTKey,
			ActivityType:  ot.ActivityType,
			ActivityState: string(ot.ActivityState),
		})
	}
	return out
}
