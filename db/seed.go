package db

import (
	log "github.com/sirupsen/logrus"

	"labo-isometeer-backend/config"
	authutils "labo-isometeer-backend/lib/utils/auth-utils"
	"labo-isometeer-backend/models"
	dbmodels "labo-isometeer-backend/models/db"
)

// SeedAdminUser crea el usuario administrador inicial si no existe
// ningún usuario, para que la instalación arranque usable.
func SeedAdminUser() {
	var count int64
	err := DB.Model(&dbmodels.User{}).Count(&count).Error
	if err != nil {
		log.WithError(err).Error("error verificando usuarios existentes")
		return
	}
	if count > 0 {
		return
	}
	rec := dbmodels.User{
		Password:  authutils.GetMD5Hash(config.Conf.Lab.AdminPassword),
		FirstName: "Admin",
		LastName:  config.Conf.Lab.Name,
		Email:     config.Conf.Lab.AdminEmail,
		IsActive:  true,
		Role:      models.UserRoleAdmin,
	}
	err = DB.Save(&rec).Error
	if err != nil {
		log.WithError(err).Error("error creando el usuario administrador inicial")
		return
	}
	log.WithField("email", rec.Email).Info("usuario administrador inicial creado")
}
