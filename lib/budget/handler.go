package budgethandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"labo-isometeer-backend/db"
	budgetstore "labo-isometeer-backend/lib/budget/store"
	clientstore "labo-isometeer-backend/lib/client/store"
	workorderhandler "labo-isometeer-backend/lib/workorder"
	"labo-isometeer-backend/models"
	budgetapimodels "labo-isometeer-backend/models/api/budget"
	otapimodels "labo-isometeer-backend/models/api/workorder"
	dbmodels "labo-isometeer-backend/models/db"
)

type Provider interface {
	Create(request budgetapimodels.BudgetData) (id string, err error)
	GetByID(id string) (view budgetapimodels.BudgetView, err error)
	List(filter budgetapimodels.BudgetListRequest) (list []budgetapimodels.BudgetView, rowCount int64, err error)
	Update(id string, request budgetapimodels.BudgetData) error
	Approve(id string, request budgetapimodels.ApproveRequest) (workOrderID string, err error)
	Reject(id string) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       budgetstore.NewInstance(db.DB),
		clientStore: clientstore.NewInstance(db.DB),
	}
}

type impl struct {
	store       budgetstore.Provider
	clientStore clientstore.Provider
}

func (i impl) Create(request budgetapimodels.BudgetData) (id string, err error) {
	logger := log.WithField("code", request.Code)
	exist, err := i.store.ExistByCode(request.Code)
	if err != nil {
		logger.WithError(err).Error("error verificando el código del presupuesto")
		return "", err
	}
	if exist {
		return "", errors.New("ya existe un presupuesto con ese código")
	}
	client, err := i.clientStore.GetByID(request.ClientID)
	if err != nil {
		return "", err
	}
	if client == nil {
		return "", errors.New("cliente no encontrado")
	}
	rec := dbmodels.Budget{
		Code:     request.Code,
		ClientID: client.ID,
		Title:    request.Title,
		Status:   models.BudgetStatusPendiente,
		Items:    toItems(request.Items),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("error creando el presupuesto")
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("code", rec.Code).
		Info("presupuesto creado")
	return id, nil
}

func (i impl) GetByID(id string) (view budgetapimodels.BudgetView, err error) {
	rec, err := i.getRecord(id)
	if err != nil {
		return budgetapimodels.BudgetView{}, err
	}
	return toView(*rec), nil
}

func (i impl) List(filter budgetapimodels.BudgetListRequest) (list []budgetapimodels.BudgetView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter, page, limit)
	if err != nil {
		log.WithError(err).Error("error obteniendo la lista de presupuestos")
		return nil, 0, err
	}
	list = make([]budgetapimodels.BudgetView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, toView(rec))
	}
	return list, rowCount, nil
}

func (i impl) Update(id string, request budgetapimodels.BudgetData) error {
	rec, err := i.getRecord(id)
	if err != nil {
		return err
	}
	if rec.Status != models.BudgetStatusPendiente {
		return errors.New("sólo se puede editar un presupuesto pendiente")
	}
	if rec.Code != request.Code {
		exist, err := i.store.ExistByCode(request.Code)
		if err != nil {
			return err
		}
		if exist {
			return errors.New("ya existe un presupuesto con ese código")
		}
	}
	err = i.store.Update(id, map[string]interface{}{
		"code":  request.Code,
		"title": request.Title,
	})
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error actualizando el presupuesto")
		return err
	}
	err = i.store.ReplaceItems(id, toItems(request.Items))
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error reemplazando los ítems del presupuesto")
		return err
	}
	log.WithField("rec_id", id).Info("presupuesto actualizado")
	return nil
}

// Approve marca el presupuesto como aprobado y, si se pide, crea la
// OT sin autorizar con una actividad por cada ítem.
func (i impl) Approve(id string, request budgetapimodels.ApproveRequest) (workOrderID string, err error) {
	rec, err := i.getRecord(id)
	if err != nil {
		return "", err
	}
	if rec.Status != models.BudgetStatusPendiente {
		return "", errors.New("sólo se puede aprobar un presupuesto pendiente")
	}
	if request.CreateWorkOrder {
		otType := request.WorkOrderType
		if otType == "" {
			otType = string(models.OTTypeOtros)
		}
		otData := otapimodels.WorkOrderData{
			Date:     time.Now().Format(otapimodels.DateLayout),
			Type:     otType,
			ClientID: rec.ClientID,
			Title:    rec.Title,
		}
		for _, item := range rec.Items {
			otData.Activities = append(otData.Activities, otapimodels.ActivityData{
				Type: item.Concept,
			})
		}
		if err = otData.Validate(); err != nil {
			return "", err
		}
		workOrderID, err = workorderhandler.Instance.Create(otData)
		if err != nil {
			log.
				WithField("rec_id", id).
				WithError(err).
				Error("error creando la OT del presupuesto aprobado")
			return "", err
		}
	}
	updMap := map[string]interface{}{
		"status": models.BudgetStatusAprobado,
	}
	if workOrderID != "" {
		updMap["work_order_id"] = workOrderID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error aprobando el presupuesto")
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("work_order_id", workOrderID).
		Info("presupuesto aprobado")
	return workOrderID, nil
}

func (i impl) Reject(id string) error {
	rec, err := i.getRecord(id)
	if err != nil {
		return err
	}
	if rec.Status != models.BudgetStatusPendiente {
		return errors.New("sólo se puede rechazar un presupuesto pendiente")
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": models.BudgetStatusRechazado,
	})
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error rechazando el presupuesto")
		return err
	}
	log.WithField("rec_id", id).Info("presupuesto rechazado")
	return nil
}

func (i impl) Delete(id string) error {
	rec, err := i.getRecord(id)
	if err != nil {
		return err
	}
	if rec.Status == models.BudgetStatusAprobado {
		return errors.New("no se puede eliminar un presupuesto aprobado")
	}
	err = i.store.Delete(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error eliminando el presupuesto")
		return err
	}
	log.WithField("rec_id", id).Info("presupuesto eliminado")
	return nil
}

func (i impl) getRecord(id string) (*dbmodels.Budget, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error buscando el presupuesto")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("presupuesto no encontrado")
	}
	return rec, nil
}

func toItems(items []budgetapimodels.BudgetItemData) []dbmodels.BudgetItem {
	recs := make([]dbmodels.BudgetItem, 0, len(items))
	for _, item := range items {
		recs = append(recs, dbmodels.BudgetItem{
			Concept:   item.Concept,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return recs
}

func toView(rec dbmodels.Budget) budgetapimodels.BudgetView {
	view := budgetapimodels.BudgetView{
		ID:          rec.ID,
		Code:        rec.Code,
		ClientID:    rec.ClientID,
		Title:       rec.Title,
		Status:      string(rec.Status),
		StatusName:  rec.Status.ToHuman(),
		WorkOrderID: rec.WorkOrderID,
		Total:       rec.Total(),
	}
	if rec.Client != nil {
		view.ClientName = rec.Client.Name
	}
	view.Items = make([]budgetapimodels.BudgetItemView, 0, len(rec.Items))
	for _, item := range rec.Items {
		view.Items = append(view.Items, budgetapimodels.BudgetItemView{
			ID:        item.ID,
			Concept:   item.Concept,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
	}
	return view
}
