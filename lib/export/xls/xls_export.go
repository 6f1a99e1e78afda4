package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dashboardapimodels "labo-isometeer-backend/models/api/dashboard"
	dbmodels "labo-isometeer-backend/models/db"
)

type Provider interface {
	ExportWorkload(list []dashboardapimodels.WorkloadRecord) (*bytes.Buffer, error)
	ExportInvoiceBook(list []dbmodels.Invoice) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var workloadHeaders = []string{"Empleado", "Asignadas", "Activas", "Completadas", "Pendientes", "En progreso", "Finalizadas", "Carga %", "OT en curso"}

func (i impl) ExportWorkload(list []dashboardapimodels.WorkloadRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error cerrando el archivo")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, workloadHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error armando el encabezado del xlsx")
	}
	if len(list) != 0 {
		row, err = writeWorkloadData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "error armando la tabla de datos del xlsx")
		}
	}
	f.SetSheetName(sheet, "Carga de trabajo")
	return f.WriteToBuffer()
}

func writeWorkloadData(f *excelize.File, sheet string, list []dashboardapimodels.WorkloadRecord, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(workloadHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Empleado"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		// "Asignadas"
		col++
		if err := writeColumn(f, sheet, col, row, item.AssignedCount); err != nil {
			return row, err
		}

		// "Activas"
		col++
		if err := writeColumn(f, sheet, col, row, item.ActiveCount); err != nil {
			return row, err
		}

		// "Completadas"
		col++
		if err := writeColumn(f, sheet, col, row, item.CompletedCount); err != nil {
			return row, err
		}

		// "Pendientes"
		col++
		if err := writeColumn(f, sheet, col, row, item.PendingCount); err != nil {
			return row, err
		}

		// "En progreso"
		col++
		if err := writeColumn(f, sheet, col, row, item.InProgressCount); err != nil {
			return row, err
		}

		// "Finalizadas"
		col++
		if err := writeColumn(f, sheet, col, row, item.FinishedCount); err != nil {
			return row, err
		}

		// "Carga %"
		col++
		if err := writeColumn(f, sheet, col, row, item.WorkloadPercentage); err != nil {
			return row, err
		}

		// "OT en curso"
		col++
		keys := ""
		for idx, ot := range item.CurrentOTs {
			if idx > 0 {
				keys += "\r"
			}
			keys += ot.OTKey
		}
		if err := writeColumn(f, sheet, col, row, keys); err != nil {
			return row, err
		}
	}
	return row, nil
}

var invoiceHeaders = []string{"Número", "OT", "Cliente", "Fecha", "Vencimiento", "Neto", "IVA", "Total", "Estado"}

func (i impl) ExportInvoiceBook(list []dbmodels.Invoice) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error cerrando el archivo")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, invoiceHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error armando el encabezado del xlsx")
	}
	if len(list) != 0 {
		row, err = writeInvoiceData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "error armando la tabla de datos del xlsx")
		}
	}
	f.SetSheetName(sheet, "Facturas")
	return f.WriteToBuffer()
}

func writeInvoiceData(f *excelize.File, sheet string, list []dbmodels.Invoice, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(invoiceHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Número"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Number); err != nil {
			return row, err
		}

		// "OT"
		col++
		if item.WorkOrder != nil {
			if err := writeColumn(f, sheet, col, row, item.WorkOrder.OTKey); err != nil {
				return row, err
			}
		}

		// "Cliente"
		col++
		if item.Client != nil {
			if err := writeColumn(f, sheet, col, row, item.Client.Name); err != nil {
				return row, err
			}
		}

		// "Fecha"
		col++
		if err := writeColumn(f, sheet, col, row, item.Date.Format("02.01.2006")); err != nil {
			return row, err
		}

		// "Vencimiento"
		col++
		if !item.DueDate.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.DueDate.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Neto"
		col++
		if err := writeColumn(f, sheet, col, row, item.Amount); err != nil {
			return row, err
		}

		// "IVA"
		col++
		if err := writeColumn(f, sheet, col, row, item.IvaAmount()); err != nil {
			return row, err
		}

		// "Total"
		col++
		if err := writeColumn(f, sheet, col, row, item.Total()); err != nil {
			return row, err
		}

		// "Estado"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v", item.Status.ToHuman())); err != nil {
			return row, err
		}
	}
	return row, nil
}
