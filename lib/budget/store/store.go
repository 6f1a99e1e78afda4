package budgetstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	budgetapimodels "labo-isometeer-backend/models/api/budget"
	dbmodels "labo-isometeer-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Budget) (id string, err error)
	GetByID(id string) (rec *dbmodels.Budget, err error)
	List(filter budgetapimodels.BudgetListRequest, page, limit int) (list []dbmodels.Budget, err error)
	ListCount(filter budgetapimodels.BudgetListRequest) (count int64, err error)
	Update(id string, updMap map[string]interface{}) error
	ReplaceItems(budgetID string, items []dbmodels.BudgetItem) error
	Delete(id string) error
	ExistByCode(code string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Budget) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Budget, error) {
	rec := dbmodels.Budget{}
	err := i.db.
		Model(&dbmodels.Budget{}).
		Where("id = ?", id).
		Preload("Client").
		Preload("Items").
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

func (i impl) List(filter budgetapimodels.BudgetListRequest, page, limit int) (list []dbmodels.Budget, err error) {
	list = []dbmodels.Budget{}
	tx := i.db.Model(dbmodels.Budget{})
	i.addFilter(tx, filter)
	err = tx.
		Order("code DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Client").
		Preload("Items").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter budgetapimodels.BudgetListRequest) (count int64, err error) {
	tx := i.db.Model(dbmodels.Budget{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Budget{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("presupuesto no encontrado")
	}
	return nil
}

func (i impl) ReplaceItems(budgetID string, items []dbmodels.BudgetItem) error {
	err := i.db.
		Where("budget_id = ?", budgetID).
		Delete(&dbmodels.BudgetItem{}).
		Error
	if err != nil {
		return err
	}
	for idx := range items {
		items[idx].BudgetID = budgetID
	}
	if len(items) == 0 {
		return nil
	}
	return i.db.
		Create(&items).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Budget{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Select(clause.Associations).
		Delete(&rec).
		Error
}

func (i impl) ExistByCode(code string) (bool, error) {
	var count int64
	err := i.db.
		Model(dbmodels.Budget{}).
		Where("code = ?", code).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) addFilter(tx *gorm.DB, filter budgetapimodels.BudgetListRequest) {
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.ClientID != "" {
		tx.Where("client_id = ?", filter.ClientID)
	}
}
