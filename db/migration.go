package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "labo-isometeer-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("ejecutando migraciones")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "error creando la estructura User")
	}
	if err := DB.AutoMigrate(&dbmodels.Client{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Client")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkOrder{}); err != nil {
		return errors.Wrap(err, "error creando la estructura WorkOrder")
	}
	if err := DB.AutoMigrate(&dbmodels.Activity{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Activity")
	}
	if err := DB.AutoMigrate(&dbmodels.Invoice{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Invoice")
	}
	if err := DB.AutoMigrate(&dbmodels.Budget{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Budget")
	}
	if err := DB.AutoMigrate(&dbmodels.BudgetItem{}); err != nil {
		return errors.Wrap(err, "error creando la estructura BudgetItem")
	}
	if err := DB.AutoMigrate(&dbmodels.UserSetting{}); err != nil {
		return errors.Wrap(err, "error creando la estructura UserSetting")
	}
	log.Info("migración finalizada")
	return nil
}
