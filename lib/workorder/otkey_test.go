package workorderhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"labo-isometeer-backend/models"
)

func TestGenerateOTKey(t *testing.T) {
	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, "20250901-CA-ACME-003",
		GenerateOTKey(date, models.OTTypeCalibracion, "ACME", 3))
	require.Equal(t, "20250901-PR-ACME-001",
		GenerateOTKey(date, models.OTTypeProduccion, "ACME", 1))
	require.Equal(t, "20250901-EN-LAB-120",
		GenerateOTKey(date, models.OTTypeEnsayo, "LAB", 120))
	// un tipo desconocido cae en el código genérico
	require.Equal(t, "20250901-OT-LAB-001",
		GenerateOTKey(date, models.OTType("rarisimo"), "LAB", 1))
}
