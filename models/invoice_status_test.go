package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvoiceStatusCanTransition(t *testing.T) {
	allowed := map[InvoiceStatus][]InvoiceStatus{
		InvoiceStatusBorrador: {InvoiceStatusEmitida, InvoiceStatusAnulada},
		InvoiceStatusEmitida:  {InvoiceStatusPagada, InvoiceStatusAnulada},
		InvoiceStatusPagada:   {},
		InvoiceStatusAnulada:  {},
	}
	all := []InvoiceStatus{InvoiceStatusBorrador, InvoiceStatusEmitida, InvoiceStatusPagada, InvoiceStatusAnulada}

	for from, targets := range allowed {
		permitted := map[InvoiceStatus]bool{}
		for _, to := range targets {
			permitted[to] = true
		}
		for _, to := range all {
			require.Equal(t, permitted[to], from.CanTransition(to),
				"%s -> %s", from, to)
		}
	}
}
