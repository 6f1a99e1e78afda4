package clienthandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"labo-isometeer-backend/db"
	clientstore "labo-isometeer-backend/lib/client/store"
	initchecker "labo-isometeer-backend/lib/utils/init-checker"
	clientapimodels "labo-isometeer-backend/models/api/client"
	dbmodels "labo-isometeer-backend/models/db"
)

type Provider interface {
	Create(request clientapimodels.ClientData) (id string, err error)
	Update(id string, request clientapimodels.ClientData) error
	Get(id string) (item clientapimodels.ClientView, err error)
	List(request clientapimodels.ClientListRequest) (list []clientapimodels.ClientView, rowCount int64, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: clientstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store clientstore.Provider
}

func (i impl) Create(request clientapimodels.ClientData) (id string, err error) {
	rec := dbmodels.Client{
		Code:        request.Code,
		Name:        request.Name,
		TaxID:       request.TaxID,
		Email:       request.Email,
		Phone:       request.Phone,
		Address:     request.Address,
		ContactName: request.ContactName,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("client_code", rec.Code).
		WithField("rec_id", id).
		Info("cliente creado")
	return id, nil
}

func (i impl) Update(id string, request clientapimodels.ClientData) error {
	updMap := map[string]interface{}{
		"code":         request.Code,
		"name":         request.Name,
		"tax_id":       request.TaxID,
		"email":        request.Email,
		"phone":        request.Phone,
		"address":      request.Address,
		"contact_name": request.ContactName,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("cliente actualizado")
	return nil
}

func (i impl) Get(id string) (item clientapimodels.ClientView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return clientapimodels.ClientView{}, err
	}
	if rec == nil {
		return clientapimodels.ClientView{}, errors.New("cliente no encontrado")
	}
	return rec.ToModel(), nil
}

func (i impl) List(request clientapimodels.ClientListRequest) (list []clientapimodels.ClientView, rowCount int64, err error) {
	page, limit := request.GetPage()
	rowCount, err = i.store.ListCount(request.Search)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(request.Search, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]clientapimodels.ClientView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	count, err := i.store.CountWorkOrders(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("el cliente tiene OTs asociadas y no puede eliminarse")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("cliente eliminado")
	return nil
}
