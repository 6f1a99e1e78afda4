package workorderstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"labo-isometeer-backend/models"
	otapimodels "labo-isometeer-backend/models/api/workorder"
	dbmodels "labo-isometeer-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.WorkOrder) (id string, err error)
	GetByID(id string) (rec *dbmodels.WorkOrder, err error)
	List(filter otapimodels.WorkOrderFilter, page, limit int) (list []dbmodels.WorkOrder, err error)
	ListCount(filter otapimodels.WorkOrderFilter) (count int64, err error)
	ListAll() (list []dbmodels.WorkOrder, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	CountByDayAndType(date time.Time, otType models.OTType) (count int64, err error)
	AddActivity(rec dbmodels.Activity) (id string, err error)
	GetActivity(workOrderID, activityID string) (rec *dbmodels.Activity, err error)
	DeleteActivity(workOrderID, activityID string) error
	UpdateActivityState(activityID string, state models.ActivityState) error
	SetAssignees(activityID string, users []dbmodels.User) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkOrder) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.WorkOrder, error) {
	rec := dbmodels.WorkOrder{}
	err := i.db.
		Model(&dbmodels.WorkOrder{}).
		Where("id = ?", id).
		Preload("Client").
		Preload("Activities").
		Preload("Activities.Assignees").
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

func (i impl) List(filter otapimodels.WorkOrderFilter, page, limit int) (list []dbmodels.WorkOrder, err error) {
	list = []dbmodels.WorkOrder{}
	tx := i.db.Model(dbmodels.WorkOrder{})
	i.addFilter(tx, filter)
	err = tx.
		Order("date DESC, ot_key DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Client").
		Preload("Activities").
		Preload("Activities.Assignees").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter otapimodels.WorkOrderFilter) (count int64, err error) {
	tx := i.db.Model(dbmodels.WorkOrder{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListAll alimenta el tablero de carga: trae todas las OT con
// actividades y asignados.
func (i impl) ListAll() (list []dbmodels.WorkOrder, err error) {
	list = []dbmodels.WorkOrder{}
	err = i.db.
		Model(dbmodels.WorkOrder{}).
		Preload("Activities").
		Preload("Activities.Assignees").
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
		Model(&dbmodels.WorkOrder{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("OT no encontrada")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.WorkOrder{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Select(clause.Associations).
		Delete(&rec).
		Error
}

func (i impl) CountByDayAndType(date time.Time, otType models.OTType) (count int64, err error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	err = i.db.
		Model(dbmodels.WorkOrder{}).
		Where("type = ?", otType).
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) AddActivity(rec dbmodels.Activity) (id string, err error) {
	err = i.db.
		Omit("Assignees.*").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetActivity(workOrderID, activityID string) (rec *dbmodels.Activity, err error) {
	rec = &dbmodels.Activity{}
	err = i.db.
		Model(&dbmodels.Activity{}).
		Where("id = ?", activityID).
		Where("work_order_id = ?", workOrderID).
		Preload("Assignees").
		First(rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) DeleteActivity(workOrderID, activityID string) error {
	return i.db.
		Where("id = ?", activityID).
		Where("work_order_id = ?", workOrderID).
		Select(clause.Associations).
		Delete(&dbmodels.Activity{}).
		Error
}

func (i impl) UpdateActivityState(activityID string, state models.ActivityState) error {
	tx := i.db.
		Model(&dbmodels.Activity{}).
		Where("id = ?", activityID).
		Update("state", state)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("actividad no encontrada")
	}
	return nil
}

func (i impl) SetAssignees(activityID string, users []dbmodels.User) error {
	rec := dbmodels.Activity{
		BaseModel: dbmodels.BaseModel{ID: activityID},
	}
	return i.db.
		Model(&rec).
		Association("Assignees").
		Replace(users)
}

func (i impl) addFilter(tx *gorm.DB, filter otapimodels.WorkOrderFilter) {
	if filter.ClientID != "" {
		tx.Where("client_id = ?", filter.ClientID)
	}
	if filter.Type != "" {
		tx.Where("type = ?", filter.Type)
	}
	if filter.DateFrom != "" {
		from, err := time.Parse(otapimodels.DateLayout, filter.DateFrom)
		if err == nil {
			tx.Where("date >= ?", from)
		}
	}
	if filter.DateTo != "" {
		to, err := time.Parse(otapimodels.DateLayout, filter.DateTo)
		if err == nil {
			tx.Where("date < ?", to.AddDate(0, 0, 1))
		}
	}
	// el filtro por etiqueta derivada se resuelve en el handler,
	// acá sólo se filtra lo que la base conoce
	switch models.OTStatus(filter.Status) {
	case models.OTStatusAnulado:
		tx.Where("auth = ?", models.AuthCancelled)
	case models.OTStatusSinAutorizar:
		tx.Where("auth = ?", models.AuthPending)
	}
}
