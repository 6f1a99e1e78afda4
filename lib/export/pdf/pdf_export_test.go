package pdfexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"labo-isometeer-backend/config"
	otapimodels "labo-isometeer-backend/models/api/workorder"
	dbmodels "labo-isometeer-backend/models/db"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	if config.Conf == nil {
		config.Conf = &config.Configuration{}
	}
	config.Conf.Lab.Name = "Labo Isometeer"
}

func TestGenerateWorkOrderPDF(t *testing.T) {
	initTestConfig(t)
	view := otapimodels.WorkOrderView{
		OTKey:      "20250901-CA-ACME-001",
		Title:      "Calibración de manómetros",
		ClientName: "ACME S.A.",
		TypeName:   "Calibración",
		Date:       "2025-09-01",
		StatusName: "En proceso",
		Activities: []otapimodels.ActivityView{
			{Type: "Calibración", StateName: "En progreso", Assignees: []string{"Ana", "José"}},
			{Type: "Informe", StateName: "Pendiente"},
		},
	}
	file, err := GenerateWorkOrderPDF(view)
	require.NoError(t, err)
	require.True(t, len(file) > 4)
	require.Equal(t, "%PDF", string(file[:4]))
}

func TestGenerateInvoicePDF(t *testing.T) {
	initTestConfig(t)
	rec := dbmodels.Invoice{
		Number:     "0001-00000042",
		Date:       time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Amount:     1000,
		IvaPercent: 21,
		Client:     &dbmodels.Client{Name: "ACME S.A.", TaxID: "30-12345678-9"},
		Notes:      "Pago a 30 días",
	}
	file, err := GenerateInvoicePDF(rec)
	require.NoError(t, err)
	require.True(t, len(file) > 4)
	require.Equal(t, "%PDF", string(file[:4]))
}
