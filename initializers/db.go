package initializers

import (
	"labo-isometeer-backend/config"
	"labo-isometeer-backend/db"
)

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Path,
		*config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}

	db.SeedAdminUser()
}
