package clientstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "labo-isometeer-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Client) (id string, err error)
	GetByID(id string) (rec *dbmodels.Client, err error)
	List(search string, page, limit int) (list []dbmodels.Client, err error)
	ListCount(search string) (count int64, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	CountWorkOrders(clientID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Client) (id string, err error) {
	err = i.isUnique("", rec.Code, rec.Name)
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Client, error) {
	rec := dbmodels.Client{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) List(search string, page, limit int) (list []dbmodels.Client, err error) {
	list = []dbmodels.Client{}
	tx := i.db.Model(dbmodels.Client{})
	i.addSearch(tx, search)
	err = tx.
		Order("name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(search string) (count int64, err error) {
	tx := i.db.Model(dbmodels.Client{})
	i.addSearch(tx, search)
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
	code, _ := updMap["code"].(string)
	name, _ := updMap["name"].(string)
	if code != "" || name != "" {
		err := i.isUnique(id, code, name)
		if err != nil {
			return err
		}
	}
	err := i.db.
		Model(&dbmodels.Client{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Client{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) CountWorkOrders(clientID string) (count int64, err error) {
	err = i.db.
		Model(dbmodels.WorkOrder{}).
		Where("client_id = ?", clientID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) addSearch(tx *gorm.DB, search string) {
	if search == "" {
		return
	}
	like := "%" + strings.ToLower(search) + "%"
	tx.Where("lower(name) LIKE ? OR lower(code) LIKE ?", like, like)
}

// isUnique exige código y nombre únicos entre los clientes; los
// campos vacíos no se verifican.
func (i impl) isUnique(selfID, code, name string) error {
	if code != "" {
		err := i.checkTaken(selfID, "code", code, "ya existe un cliente con ese código")
		if err != nil {
			return err
		}
	}
	if name != "" {
		err := i.checkTaken(selfID, "name", name, "ya existe un cliente con ese nombre")
		if err != nil {
			return err
		}
	}
	return nil
}

func (i impl) checkTaken(selfID, column, value, takenMsg string) error {
	var rowCount int64
	tx := i.db.Model(dbmodels.Client{})
	tx.Where(column+" = ?", value)
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "error verificando unicidad del cliente")
	}
	if rowCount != 0 {
		return errors.New(takenMsg)
	}
	return nil
}
