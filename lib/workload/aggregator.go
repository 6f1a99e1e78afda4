package workload

import (
	"math"

	"labo-isometeer-backend/models"
)

// tope de actividades activas sobre el que se calcula el porcentaje
// de carga; es una constante de negocio, no un modelo de capacidad
const workloadCap = 10

type CurrentOT struct {
	WorkOrderID   string
	OTKey         string
	ActivityType  string
	ActivityState models.ActivityState
}

type Record struct {
	Name               string
	AssignedCount      int
	ActiveCount        int
	CompletedCount     int
	PendingCount       int
	InProgressCount    int
	FinishedCount      int
	WorkloadPercentage int
	CurrentOTs         []CurrentOT
}

// Aggregate produce un Record por cada nombre de empleado que
// aparezca asignado en alguna actividad. La pertenencia la maneja
// exclusivamente la asignación: una OT anulada sigue sumando
// contadores por actividad, y el crédito de completado se otorga
// por asignación sólo cuando la OT entera clasifica Terminadas.
//
// El agrupamiento es por nombre visible normalizado, no por id:
// dos empleados distintos con el mismo nombre colapsan en un solo
// registro. Es un defecto heredado que el tablero asume.
func Aggregate(orders []Order) []Record {
	records := map[string]*Record{}
	seen := []string{}

	for _, order := range orders {
		label := Classify(order)
		for _, act := range order.Activities {
			for _, name := range act.Assignees {
				key := NormalizeName(name)
				if key == "" {
					continue
				}
				rec, exist := records[key]
				if !exist {
					// el nombre visible conserva mayúsculas y tildes
					// de la primera aparición
					rec = &Record{Name: name, CurrentOTs: []CurrentOT{}}
					records[key] = rec
					seen = append(seen, key)
				}
				rec.AssignedCount++
				switch act.State {
				case models.ActivityStatePendiente:
					rec.PendingCount++
				case models.ActivityStateEnProgreso:
					rec.InProgressCount++
				case models.ActivityStateFinalizada:
					rec.FinishedCount++
				}
				if label == models.OTStatusTerminadas {
					rec.CompletedCount++
				}
				if act.State == models.ActivityStatePendiente || act.State == models.ActivityStateEnProgreso {
					rec.ActiveCount++
					rec.CurrentOTs = append(rec.CurrentOTs, CurrentOT{
						WorkOrderID:   order.ID,
						OTKey:         order.OTKey,
						ActivityType:  act.Type,
						ActivityState: act.State,
					})
				}
			}
		}
	}

	result := make([]Record, 0, len(seen))
	for _, key := range seen {
		rec := records[key]
		if rec.AssignedCount > 0 {
			rec.WorkloadPercentage = percentage(rec.ActiveCount)
		}
		result = append(result, *rec)
	}
	return result
}

func percentage(activeCount int) int {
	pct := int(math.Round(float64(activeCount) / workloadCap * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
