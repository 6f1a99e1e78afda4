package models

type ActivityState string

const (
	ActivityStatePendiente  ActivityState = "pendiente"
	ActivityStateEnProgreso ActivityState = "en_progreso"
	ActivityStateFinalizada ActivityState = "finalizada"
)

var activityStateHumanName = map[ActivityState]string{
	ActivityStatePendiente:  "Pendiente",
	ActivityStateEnProgreso: "En progreso",
	ActivityStateFinalizada: "Finalizada",
}

func (s ActivityState) ToHuman() string {
	if human, exist := activityStateHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ActivityState) IsValid() bool {
	_, exist := activityStateHumanName[s]
	return exist
}

// vocabulario heredado del frontend viejo, se acepta en la API
// y se colapsa al enum canónico en el borde de ingestión
var legacyActivityState = map[string]ActivityState{
	"CREATED": ActivityStatePendiente,
	"STARTED": ActivityStateEnProgreso,
	"END":     ActivityStateFinalizada,
}

// ParseActivityState acepta ambos vocabularios; el booleano indica
// si el valor era reconocido.
func ParseActivityState(value string) (ActivityState, bool) {
	state := ActivityState(value)
	if state.IsValid() {
		return state, true
	}
	if canonical, exist := legacyActivityState[value]; exist {
		return canonical, true
	}
	return "", false
}

var activityStateOrder = map[ActivityState]int{
	ActivityStatePendiente:  0,
	ActivityStateEnProgreso: 1,
	ActivityStateFinalizada: 2,
}

// CanTransition permite avanzar o retroceder un paso, nunca saltar
// de pendiente a finalizada ni reabrir una actividad finalizada.
func (s ActivityState) CanTransition(to ActivityState) bool {
	from, okFrom := activityStateOrder[s]
	next, okTo := activityStateOrder[to]
	if !okFrom || !okTo {
		return false
	}
	if s == ActivityStateFinalizada {
		return false
	}
	diff := next - from
	return diff == 1 || diff == -1
}
