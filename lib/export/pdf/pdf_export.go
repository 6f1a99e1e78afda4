package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"labo-isometeer-backend/config"
	otapimodels "labo-isometeer-backend/models/api/workorder"
	dbmodels "labo-isometeer-backend/models/db"
)

// GenerateInvoicePDF arma la factura imprimible. Los acentos del
// castellano entran en latin-1, alcanza con las fuentes core de fpdf.
func GenerateInvoicePDF(rec dbmodels.Invoice) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateInvoicePDF panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(config.Conf.Lab.Name))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("Factura "+rec.Number))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	if rec.Client != nil {
		pdf.Cell(0, 6, tr("Cliente: "+rec.Client.Name))
		pdf.Ln(6)
		if rec.Client.TaxID != "" {
			pdf.Cell(0, 6, tr("CUIT: "+rec.Client.TaxID))
			pdf.Ln(6)
		}
	}
	if rec.WorkOrder != nil {
		pdf.Cell(0, 6, tr("OT: "+rec.WorkOrder.OTKey))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, tr("Fecha: "+rec.Date.Format("02.01.2006")))
	pdf.Ln(6)
	if !rec.DueDate.IsZero() {
		pdf.Cell(0, 6, tr("Vencimiento: "+rec.DueDate.Format("02.01.2006")))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(60, 7, tr("Neto"))
	pdf.Cell(0, 7, tr(fmt.Sprintf("$ %.2f", rec.Amount)))
	pdf.Ln(7)
	pdf.Cell(60, 7, tr(fmt.Sprintf("IVA (%.1f%%)", rec.IvaPercent)))
	pdf.Cell(0, 7, tr(fmt.Sprintf("$ %.2f", rec.IvaAmount())))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(60, 8, tr("Total"))
	pdf.Cell(0, 8, tr(fmt.Sprintf("$ %.2f", rec.Total())))
	pdf.Ln(12)

	if rec.Notes != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, tr(rec.Notes), "", "L", false)
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateWorkOrderPDF arma la hoja de ruta de una OT con sus
// actividades y asignados.
func GenerateWorkOrderPDF(view otapimodels.WorkOrderView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateWorkOrderPDF panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(config.Conf.Lab.Name))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("Orden de trabajo "+view.OTKey))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr("Título: "+view.Title))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Cliente: "+view.ClientName))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Tipo: "+view.TypeName))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Fecha: "+view.Date))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Estado: "+view.StatusName))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Actividades"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, act := range view.Activities {
		line := fmt.Sprintf("- %s [%s]", act.Type, act.StateName)
		if len(act.Assignees) > 0 {
			line += ": "
			for idx, name := range act.Assignees {
				if idx > 0 {
					line += ", "
				}
				line += name
			}
		}
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
