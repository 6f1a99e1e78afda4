package invoiceworker

import (
	"context"
	"fmt"
	"time"

	"labo-isometeer-backend/config"
	"labo-isometeer-backend/db"
	invoicestore "labo-isometeer-backend/lib/invoice/store"
	"labo-isometeer-backend/lib/smtp"
	baseworker "labo-isometeer-backend/lib/utils/base-worker"
	"labo-isometeer-backend/lib/utils/helpers"
	"labo-isometeer-backend/models"
)

// StartWorker revisa una vez por hora las facturas emitidas y avisa
// a facturación las que pasaron su vencimiento.
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:     *baseworker.NewInstance("InvoiceOverdueWorker", 30*time.Second, 60*time.Minute),
		invoiceStore: invoicestore.NewInstance(db.DB),
		notified:     map[string]struct{}{},
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	invoiceStore invoicestore.Provider
	// facturas ya avisadas en esta corrida del proceso
	notified map[string]struct{}
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	billingEmail := config.Conf.Lab.BillingEmail
	if billingEmail == "" {
		return
	}
	list, err := i.invoiceStore.ListByStatus(models.InvoiceStatusEmitida)
	if err != nil {
		logger.WithError(err).Error("error obteniendo las facturas emitidas")
		return
	}
	now := time.Now()
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		if !rec.IsOverdue(now) {
			continue
		}
		if _, done := i.notified[rec.ID]; done {
			continue
		}
		clientName := ""
		if rec.Client != nil {
			clientName = rec.Client.Name
		}
		msg := fmt.Sprintf("La factura %s (%s) venció el %s y sigue impaga. Total: $ %.2f",
			rec.Number, clientName, rec.DueDate.Format("02.01.2006"), rec.Total())
		err = smtp.Instance.SendEMail(config.Conf.Smtp.From, billingEmail, msg, "Factura vencida")
		if err != nil {
			logger.
				WithError(err).
				WithField("rec_id", rec.ID).
				Error("error avisando la factura vencida")
			continue
		}
		i.notified[rec.ID] = struct{}{}
	}
}
