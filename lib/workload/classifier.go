package workload

import (
	"labo-isometeer-backend/models"
)

// Order es la vista mínima de una OT que necesita el tablero.
type Order struct {
	ID         string
	OTKey      string
	Auth       models.AuthState
	Activities []Activity
}

type Activity struct {
	Type      string
	State     models.ActivityState
	Assignees []string
}

// Las reglas se evalúan en orden y gana la primera que matchea:
// los problemas de autorización pesan más que los de asignación,
// y estos más que el avance de las actividades.
type rule struct {
	match func(Order) bool
	label models.OTStatus
}

var classifierRules = []rule{
	{func(o Order) bool { return o.Auth == models.AuthCancelled }, models.OTStatusAnulado},
	{func(o Order) bool { return o.Auth == models.AuthPending }, models.OTStatusSinAutorizar},
	{anyActivity(func(a Activity) bool { return len(a.Assignees) == 0 }), models.OTStatusSinAsignar},
	{anyActivity(stateIs(models.ActivityStatePendiente)), models.OTStatusEnEspera},
	{anyActivity(stateIs(models.ActivityStateEnProgreso)), models.OTStatusEnProceso},
}

// Classify es total: cualquier dato degenerado (sin actividades,
// estados desconocidos) cae en Terminadas, nunca panics.
func Classify(o Order) models.OTStatus {
	for _, r := range classifierRules {
		if r.match(o) {
			return r.label
		}
	}
	return models.OTStatusTerminadas
}

func anyActivity(pred func(Activity) bool) func(Order) bool {
	return func(o Order) bool {
		for _, act := range o.Activities {
			if pred(act) {
				return true
			}
		}
		return false
	}
}

func stateIs(state models.ActivityState) func(Activity) bool {
	return func(a Activity) bool {
		return a.State == state
	}
}
