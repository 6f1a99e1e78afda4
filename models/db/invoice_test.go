package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"labo-isometeer-backend/models"
)

func TestInvoiceAmounts(t *testing.T) {
	inv := Invoice{Amount: 1000, IvaPercent: 21}
	require.Equal(t, 210.0, inv.IvaAmount())
	require.Equal(t, 1210.0, inv.Total())

	t.Run(`redondeo a dos decimales`, func(t *testing.T) {
		inv := Invoice{Amount: 33.33, IvaPercent: 21}
		require.Equal(t, 7.0, inv.IvaAmount())
		require.Equal(t, 40.33, inv.Total())
	})
}

func TestInvoiceIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, -1)

	require.True(t, Invoice{Status: models.InvoiceStatusEmitida, DueDate: due}.IsOverdue(now))
	require.False(t, Invoice{Status: models.InvoiceStatusEmitida, DueDate: now.AddDate(0, 0, 1)}.IsOverdue(now))
	require.False(t, Invoice{Status: models.InvoiceStatusEmitida}.IsOverdue(now))
	require.False(t, Invoice{Status: models.InvoiceStatusPagada, DueDate: due}.IsOverdue(now))
	require.False(t, Invoice{Status: models.InvoiceStatusBorrador, DueDate: due}.IsOverdue(now))
}

func TestBudgetTotal(t *testing.T) {
	b := Budget{Items: []BudgetItem{
		{Concept: "Calibración manómetro", Quantity: 3, UnitPrice: 12.5},
		{Concept: "Ensayo de presión", Quantity: 1.5, UnitPrice: 33.33},
	}}
	require.Equal(t, 37.5, b.Items[0].Subtotal())
	require.Equal(t, 50.0, b.Items[1].Subtotal())
	require.Equal(t, 87.5, b.Total())

	require.Equal(t, 0.0, Budget{}.Total())
}
