package models

// AuthState es el estado de autorización de una OT.
// Se guarda como tri-estado en la base, el frontend recibe además
// el booleano derivado "authorized".
type AuthState int

const (
	AuthCancelled  AuthState = -1
	AuthPending    AuthState = 0
	AuthAuthorized AuthState = 1
)

func (a AuthState) IsValid() bool {
	return a == AuthCancelled || a == AuthPending || a == AuthAuthorized
}

type OTStatus string

const (
	OTStatusAnulado      OTStatus = "anulado"
	OTStatusSinAutorizar OTStatus = "sin_autorizar"
	OTStatusSinAsignar   OTStatus = "sin_asignar"
	OTStatusEnEspera     OTStatus = "en_espera"
	OTStatusEnProceso    OTStatus = "en_proceso"
	OTStatusTerminadas   OTStatus = "terminadas"
)

var otStatusHumanName = map[OTStatus]string{
	OTStatusAnulado:      "Anulado",
	OTStatusSinAutorizar: "Sin autorizar",
	OTStatusSinAsignar:   "Sin asignar",
	OTStatusEnEspera:     "En espera",
	OTStatusEnProceso:    "En proceso",
	OTStatusTerminadas:   "Terminadas",
}

func (s OTStatus) ToHuman() string {
	if human, exist := otStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type OTType string

const (
	OTTypeProduccion  OTType = "produccion"
	OTTypeCalibracion OTType = "calibracion"
	OTTypeEnsayo      OTType = "ensayo"
	OTTypeOtros       OTType = "otros"
)

// código de dos letras usado en la clave de OT
var otTypeCode = map[OTType]string{
	OTTypeProduccion:  "PR",
	OTTypeCalibracion: "CA",
	OTTypeEnsayo:      "EN",
	OTTypeOtros:       "OT",
}

var otTypeHumanName = map[OTType]string{
	OTTypeProduccion:  "Producción",
	OTTypeCalibracion: "Calibración",
	OTTypeEnsayo:      "Ensayo",
	OTTypeOtros:       "Otros",
}

func (t OTType) Code() string {
	if code, exist := otTypeCode[t]; exist {
		return code
	}
	return "OT"
}

func (t OTType) ToHuman() string {
	if human, exist := otTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t OTType) IsValid() bool {
	_, exist := otTypeCode[t]
	return exist
}
