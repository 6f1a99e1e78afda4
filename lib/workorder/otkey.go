package workorderhandler

import (
	"fmt"
	"time"

	"labo-isometeer-backend/models"
)

// GenerateOTKey arma la clave legible de una OT:
// fecha + tipo (dos letras) + código de cliente + secuencia del día
// con padding a tres dígitos, ej. 20250901-CA-ACME-003.
func GenerateOTKey(date time.Time, otType models.OTType, clientCode string, seq int) string {
	return fmt.Sprintf("%s-%s-%s-%03d", date.Format("20060102"), otType.Code(), clientCode, seq)
}
