package usersstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "labo-isometeer-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (string, error)
	Update(userID string, updMap map[string]interface{}) error
	Delete(userID string) error
	GetList(search string, page, limit int) (userList []dbmodels.User, err error)
	GetListCount(search string) (count int64, err error)
	ExistByEmail(email string) (bool, error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	GetByID(userID string) (rec *dbmodels.User, err error)
	GetByIDs(userIDs []string) (userList []dbmodels.User, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", userID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(userID string) error {
	return i.db.
		Where("id = ?", userID).
		Delete(&dbmodels.User{}).
		Error
}

func (i impl) GetList(search string, page, limit int) (userList []dbmodels.User, err error) {
	tx := i.db.Model(dbmodels.User{})
	i.addSearch(tx, search)
	err = tx.
		Order("last_name, first_name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&userList).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return userList, nil
}

func (i impl) GetListCount(search string) (count int64, err error) {
	tx := i.db.Model(dbmodels.User{})
	i.addSearch(tx, search)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) GetByID(userID string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetByIDs(userIDs []string) (userList []dbmodels.User, err error) {
	if len(userIDs) == 0 {
		return []dbmodels.User{}, nil
	}
	err = i.db.Model(dbmodels.User{}).
		Where("id IN ?", userIDs).
		Find(&userList).
		Error
	if err != nil {
		return nil, err
	}
	return userList, nil
}

func (i impl) FindByEmail(email string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("email = ?", email).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ExistByEmail(email string) (bool, error) {
	var count int64
	err := i.db.
		Model(dbmodels.User{}).
		Where("email = ?", email).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) addSearch(tx *gorm.DB, search string) {
	if search == "" {
		return
	}
	like := "%" + strings.ToLower(search) + "%"
	tx.Where("lower(first_name) LIKE ? OR lower(last_name) LIKE ? OR lower(email) LIKE ?", like, like, like)
}
