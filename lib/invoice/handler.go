package invoicehandler

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"labo-isometeer-backend/db"
	pdfexport "labo-isometeer-backend/lib/export/pdf"
	xlsexport "labo-isometeer-backend/lib/export/xls"
	invoicestore "labo-isometeer-backend/lib/invoice/store"
	"labo-isometeer-backend/lib/smtp"
	workorderstore "labo-isometeer-backend/lib/workorder/store"
	"labo-isometeer-backend/models"
	invoiceapimodels "labo-isometeer-backend/models/api/invoice"
	dbmodels "labo-isometeer-backend/models/db"
)

type Provider interface {
	Create(request invoiceapimodels.InvoiceData) (id string, err error)
	GetByID(id string) (view invoiceapimodels.InvoiceView, err error)
	List(filter invoiceapimodels.InvoiceFilter) (list []invoiceapimodels.InvoiceView, rowCount int64, err error)
	Update(id string, request invoiceapimodels.InvoiceData) error
	ChangeStatus(id string, request invoiceapimodels.StatusChangeRequest) error
	Delete(id string) error
	GetPDF(id string) (fileName string, file []byte, err error)
	Send(id string, request invoiceapimodels.SendRequest) error
	ExportBook(filter invoiceapimodels.InvoiceFilter) (file *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   invoicestore.NewInstance(db.DB),
		otStore: workorderstore.NewInstance(db.DB),
	}
}

type impl struct {
	store   invoicestore.Provider
	otStore workorderstore.Provider
}

func (i impl) Create(request invoiceapimodels.InvoiceData) (id string, err error) {
	logger := log.WithField("number", request.Number)
	exist, err := i.store.ExistByNumber(request.Number)
	if err != nil {
		logger.WithError(err).Error("error verificando el número de factura")
		return "", err
	}
	if exist {
		return "", errors.New("ya existe una factura con ese número")
	}
	ot, err := i.otStore.GetByID(request.WorkOrderID)
	if err != nil {
		return "", err
	}
	if ot == nil {
		return "", errors.New("OT no encontrada")
	}
	rec, err := i.toRecord(request)
	if err != nil {
		return "", err
	}
	rec.ClientID = ot.ClientID
	rec.Status = models.InvoiceStatusBorrador
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("error creando la factura")
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("number", rec.Number).
		Info("factura creada")
	return id, nil
}

func (i impl) GetByID(id string) (view invoiceapimodels.InvoiceView, err error) {
	rec, err := i.getRecord(id)
	if err != nil {
		return invoiceapimodels.InvoiceView{}, err
	}
	return i.toView(*rec), nil
}

func (i impl) List(filter invoiceapimodels.InvoiceFilter) (list []invoiceapimodels.InvoiceView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter, page, limit)
	if err != nil {
		log.WithError(err).Error("error obteniendo la lista de facturas")
		return nil, 0, err
	}
	list = make([]invoiceapimodels.InvoiceView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, i.toView(rec))
	}
	return list, rowCount, nil
}

func (i impl) Update(id string, request invoiceapimodels.InvoiceData) error {
	rec, err := i.getRecord(id)
	if err != nil {
		return err
	}
	if rec.Status != models.InvoiceStatusBorrador {
		return errors.New("sólo se puede editar una factura en borrador")
	}
	if rec.Number != request.Number {
		exist, err := i.store.ExistByNumber(request.Number)
		if err != nil {
			return err
		}
		if exist {
			return errors.New("ya existe una factura con ese número")
		}
	}
	newRec, err := i.toRecord(request)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"number":      newRec.Number,
		"date":        newRec.Date,
		"due_date":    newRec.DueDate,
		"amount":      newRec.Amount,
		"iva_percent": newRec.IvaPercent,
		"notes":       newRec.Notes,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error actualizando la factura")
		return err
	}
	log.WithField("rec_id", id).Info("factura actualizada")
	return nil
}

func (i impl) ChangeStatus(id string, request invoiceapimodels.StatusChangeRequest) error {
	rec, err := i.getRecord(id)
	if err != nil {
		return err
	}
	newStatus := models.InvoiceStatus(request.Status)
	if !rec.Status.CanTransition(newStatus) {
		return errors.Errorf("la factura no puede pasar de %s a %s", rec.Status.ToHuman(), newStatus.ToHuman())
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": newStatus,
	})
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error cambiando el estado de la factura")
		return err
	}
	log.
		WithField("rec_id", id).
		WithField("status", newStatus).
		Info("estado de factura actualizado")
	return nil
}

func (i impl) Delete(id string) error {
	rec, err := i.getRecord(id)
	if err != nil {
		return err
	}
	if rec.Status != models.InvoiceStatusBorrador {
		return errors.New("sólo se puede eliminar una factura en borrador")
	}
	err = i.store.Delete(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error eliminando la factura")
		return err
	}
	log.WithField("rec_id", id).Info("factura eliminada")
	return nil
}

func (i impl) GetPDF(id string) (fileName string, file []byte, err error) {
	rec, err := i.getRecord(id)
	if err != nil {
		return "", nil, err
	}
	file, err = pdfexport.GenerateInvoicePDF(*rec)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error generando el PDF de la factura")
		return "", nil, err
	}
	return "factura-" + rec.Number + ".pdf", file, nil
}

func (i impl) Send(id string, request invoiceapimodels.SendRequest) error {
	rec, err := i.getRecord(id)
	if err != nil {
		return err
	}
	if rec.Status == models.InvoiceStatusBorrador || rec.Status == models.InvoiceStatusAnulada {
		return errors.New("sólo se puede enviar una factura emitida o pagada")
	}
	fileName, file, err := i.GetPDF(id)
	if err != nil {
		return err
	}
	body := "Adjuntamos la factura " + rec.Number
	if rec.Client != nil {
		body += " a nombre de " + rec.Client.Name
	}
	err = smtp.SendWithAttachment(request.Email, "Factura "+rec.Number, body, fileName, file)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		WithField("email", request.Email).
		Info("factura enviada por correo")
	return nil
}

func (i impl) ExportBook(filter invoiceapimodels.InvoiceFilter) (file *bytes.Buffer, err error) {
	recs, err := i.store.List(filter, 1, exportLimit)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportInvoiceBook(recs)
}

const exportLimit = 10000

func (i impl) getRecord(id string) (*dbmodels.Invoice, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error buscando la factura")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("factura no encontrada")
	}
	return rec, nil
}

func (i impl) toRecord(request invoiceapimodels.InvoiceData) (dbmodels.Invoice, error) {
	date, err := time.Parse(invoiceapimodels.DateLayout, request.Date)
	if err != nil {
		return dbmodels.Invoice{}, err
	}
	rec := dbmodels.Invoice{
		Number:      request.Number,
		WorkOrderID: request.WorkOrderID,
		Date:        date,
		Amount:      request.Amount,
		IvaPercent:  request.IvaPercent,
		Notes:       request.Notes,
	}
	if request.DueDate != "" {
		dueDate, err := time.Parse(invoiceapimodels.DateLayout, request.DueDate)
		if err != nil {
			return dbmodels.Invoice{}, err
		}
		rec.DueDate = dueDate
	}
	return rec, nil
}

func (i impl) toView(rec dbmodels.Invoice) invoiceapimodels.InvoiceView {
	view := invoiceapimodels.InvoiceView{
		ID:          rec.ID,
		Number:      rec.Number,
		WorkOrderID: rec.WorkOrderID,
		ClientID:    rec.ClientID,
		Date:        rec.Date.Format(invoiceapimodels.DateLayout),
		Amount:      rec.Amount,
		IvaPercent:  rec.IvaPercent,
		IvaAmount:   rec.IvaAmount(),
		Total:       rec.Total(),
		Status:      string(rec.Status),
		StatusName:  rec.Status.ToHuman(),
		Notes:       rec.Notes,
	}
	if !rec.DueDate.IsZero() {
		view.DueDate = rec.DueDate.Format(invoiceapimodels.DateLayout)
	}
	if rec.WorkOrder != nil {
		view.OTKey = rec.WorkOrder.OTKey
	}
	if rec.Client != nil {
		view.ClientName = rec.Client.Name
	}
	return view
}
