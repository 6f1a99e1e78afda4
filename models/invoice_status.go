package models

type InvoiceStatus string

const (
	InvoiceStatusBorrador InvoiceStatus = "borrador"
	InvoiceStatusEmitida  InvoiceStatus = "emitida"
	InvoiceStatusPagada   InvoiceStatus = "pagada"
	InvoiceStatusAnulada  InvoiceStatus = "anulada"
)

var invoiceStatusHumanName = map[InvoiceStatus]string{
	InvoiceStatusBorrador: "Borrador",
	InvoiceStatusEmitida:  "Emitida",
	InvoiceStatusPagada:   "Pagada",
	InvoiceStatusAnulada:  "Anulada",
}

func (s InvoiceStatus) ToHuman() string {
	if human, exist := invoiceStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s InvoiceStatus) IsValid() bool {
	_, exist := invoiceStatusHumanName[s]
	return exist
}

// una factura pagada es terminal, una anulada también
var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusBorrador: {InvoiceStatusEmitida, InvoiceStatusAnulada},
	InvoiceStatusEmitida:  {InvoiceStatusPagada, InvoiceStatusAnulada},
}

func (s InvoiceStatus) CanTransition(to InvoiceStatus) bool {
	for _, allowed := range invoiceTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}
