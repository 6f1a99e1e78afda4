package initializers

import (
	"context"

	"labo-isometeer-backend/config"
	"labo-isometeer-backend/fiberlog"
	authhandler "labo-isometeer-backend/lib/auth"
	budgethandler "labo-isometeer-backend/lib/budget"
	clienthandler "labo-isometeer-backend/lib/client"
	dashboardhandler "labo-isometeer-backend/lib/dashboard"
	xlsexport "labo-isometeer-backend/lib/export/xls"
	invoicehandler "labo-isometeer-backend/lib/invoice"
	invoiceworker "labo-isometeer-backend/lib/invoice/worker"
	usershandler "labo-isometeer-backend/lib/users"
	workorderhandler "labo-isometeer-backend/lib/workorder"
	connectionhub "labo-isometeer-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	usershandler.NewHandler()
	authhandler.NewHandler()
	clienthandler.NewHandler()
	xlsexport.NewHandler()
	workorderhandler.NewHandler()
	invoicehandler.NewHandler()
	budgethandler.NewHandler()
	dashboardhandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Tarea de aviso de facturas vencidas
	invoiceworker.StartWorker(ctx)
}
