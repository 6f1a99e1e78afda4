package displayorderstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "labo-isometeer-backend/models/db"
)

// NewInstance devuelve un KVStore respaldado en la tabla de
// preferencias, con alcance por usuario.
func NewInstance(DB *gorm.DB, userID string) *Impl {
	return &Impl{
		db:     DB,
		userID: userID,
	}
}

type Impl struct {
	db     *gorm.DB
	userID string
}

func (i *Impl) Get(key string) ([]byte, bool, error) {
	rec := dbmodels.UserSetting{}
	err := i.db.
		Where("user_id = ?", i.userID).
		Where("key = ?", key).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return rec.Value, true, nil
}

func (i *Impl) Set(key string, value []byte) error {
	rec := dbmodels.UserSetting{}
	err := i.db.
		Where("user_id = ?", i.userID).
		Where("key = ?", key).
		First(&rec).
		Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		rec = dbmodels.UserSetting{
			UserID: i.userID,
			Key:    key,
			Value:  value,
		}
		return i.db.Save(&rec).Error
	}
	return i.db.
		Model(&dbmodels.UserSetting{}).
		Where("id = ?", rec.ID).
		Update("value", value).
		Error
}
