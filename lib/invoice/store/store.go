package invoicestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"labo-isometeer-backend/models"
	invoiceapimodels "labo-isometeer-backend/models/api/invoice"
	dbmodels "labo-isometeer-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Invoice) (id string, err error)
	GetByID(id string) (rec *dbmodels.Invoice, err error)
	List(filter invoiceapimodels.InvoiceFilter, page, limit int) (list []dbmodels.Invoice, err error)
	ListCount(filter invoiceapimodels.InvoiceFilter) (count int64, err error)
	ListByStatus(status models.InvoiceStatus) (list []dbmodels.Invoice, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ExistByNumber(number string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Invoice) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Invoice, error) {
	rec := dbmodels.Invoice{}
	err := i.db.
		Model(&dbmodels.Invoice{}).
		Where("id = ?", id).
		Preload("Client").
		Preload("WorkOrder").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter invoiceapimodels.InvoiceFilter, page, limit int) (list []dbmodels.Invoice, err error) {
	list = []dbmodels.Invoice{}
	tx := i.db.Model(dbmodels.Invoice{})
	i.addFilter(tx, filter)
	err = tx.
		Order("date DESC, number DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Client").
		Preload("WorkOrder").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter invoiceapimodels.InvoiceFilter) (count int64, err error) {
	tx := i.db.Model(dbmodels.Invoice{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListByStatus alimenta al worker de vencimientos.
func (i impl) ListByStatus(status models.InvoiceStatus) (list []dbmodels.Invoice, err error) {
	list = []dbmodels.Invoice{}
	err = i.db.
		Model(dbmodels.Invoice{}).
		Where("status = ?", status).
		Preload("Client").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Invoice{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("factura no encontrada")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Invoice{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) ExistByNumber(number string) (bool, error) {
	var count int64
	err := i.db.
		Model(dbmodels.Invoice{}).
		Where("number = ?", number).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) addFilter(tx *gorm.DB, filter invoiceapimodels.InvoiceFilter) {
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.ClientID != "" {
		tx.Where("client_id = ?", filter.ClientID)
	}
}
