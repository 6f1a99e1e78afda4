package workload

import (
	"testing"

	"github.com/stretchr/testify/require"

	"labo-isometeer-backend/models"
)

func findRecord(t *testing.T, records []Record, name string) Record {
	t.Helper()
	for _, rec := range records {
		if rec.Name == name {
			return rec
		}
	}
	t.Fatalf("no se encontró el registro de %s", name)
	return Record{}
}

func TestAggregate(t *testing.T) {
	t.Run(`escenario concreto del tablero`, func(t *testing.T) {
		orders := []Order{{
			ID:    "1",
			OTKey: "20250901-CA-ACME-001",
			Auth:  models.AuthAuthorized,
			Activities: []Activity{
				{Type: "calibracion", State: models.ActivityStateEnProgreso, Assignees: []string{"Ana"}},
				{Type: "ensayo", State: models.ActivityStatePendiente, Assignees: []string{"Ana", "Beto"}},
			},
		}}
		// con una actividad pendiente la OT queda en espera,
		// no en proceso
		require.Equal(t, models.OTStatusEnEspera, Classify(orders[0]))

		records := Aggregate(orders)
		require.Len(t, records, 2)

		ana := findRecord(t, records, "Ana")
		require.Equal(t, 2, ana.AssignedCount)
		require.Equal(t, 2, ana.ActiveCount)
		require.Equal(t, 0, ana.CompletedCount)
		require.Equal(t, 1, ana.PendingCount)
		require.Equal(t, 1, ana.InProgressCount)
		require.Equal(t, 20, ana.WorkloadPercentage)
		require.Len(t, ana.CurrentOTs, 2)
		require.Equal(t, "20250901-CA-ACME-001", ana.CurrentOTs[0].OTKey)

		beto := findRecord(t, records, "Beto")
		require.Equal(t, 1, beto.AssignedCount)
		require.Equal(t, 1, beto.ActiveCount)
		require.Equal(t, 0, beto.CompletedCount)
		require.Equal(t, 10, beto.WorkloadPercentage)
	})

	t.Run(`el porcentaje satura en 100`, func(t *testing.T) {
		activities := make([]Activity, 0, 12)
		for i := 0; i < 12; i++ {
			activities = append(activities, Activity{
				Type: "ensayo", State: models.ActivityStatePendiente, Assignees: []string{"Ana"},
			})
		}
		records := Aggregate([]Order{{ID: "1", Auth: models.AuthAuthorized, Activities: activities}})
		ana := findRecord(t, records, "Ana")
		require.Equal(t, 12, ana.ActiveCount)
		require.Equal(t, 100, ana.WorkloadPercentage)
	})

	t.Run(`tres activas son 30 por ciento`, func(t *testing.T) {
		activities := []Activity{
			{State: models.ActivityStatePendiente, Assignees: []string{"Ana"}},
			{State: models.ActivityStateEnProgreso, Assignees: []string{"Ana"}},
			{State: models.ActivityStateEnProgreso, Assignees: []string{"Ana"}},
		}
		records := Aggregate([]Order{{ID: "1", Auth: models.AuthAuthorized, Activities: activities}})
		require.Equal(t, 30, findRecord(t, records, "Ana").WorkloadPercentage)
	})

	t.Run(`nombres con tildes colapsan en un registro`, func(t *testing.T) {
		orders := []Order{
			{ID: "1", Auth: models.AuthAuthorized, Activities: []Activity{
				{State: models.ActivityStatePendiente, Assignees: []string{"José Pérez"}},
			}},
			{ID: "2", Auth: models.AuthAuthorized, Activities: []Activity{
				{State: models.ActivityStateEnProgreso, Assignees: []string{"jose perez"}},
			}},
		}
		records := Aggregate(orders)
		require.Len(t, records, 1)
		// el nombre visible conserva la primera aparición
		require.Equal(t, "José Pérez", records[0].Name)
		require.Equal(t, 2, records[0].AssignedCount)
	})

	t.Run(`una OT anulada sigue sumando contadores por actividad`, func(t *testing.T) {
		records := Aggregate([]Order{{
			ID:   "1",
			Auth: models.AuthCancelled,
			Activities: []Activity{
				{State: models.ActivityStateEnProgreso, Assignees: []string{"Ana"}},
			},
		}})
		ana := findRecord(t, records, "Ana")
		require.Equal(t, 1, ana.AssignedCount)
		require.Equal(t, 1, ana.ActiveCount)
		require.Equal(t, 0, ana.CompletedCount)
	})

	t.Run(`el completado se acredita por OT terminada, no por actividad`, func(t *testing.T) {
		orders := []Order{
			// OT terminada: cada asignación acredita un completado
			{ID: "1", Auth: models.AuthAuthorized, Activities: []Activity{
				{State: models.ActivityStateFinalizada, Assignees: []string{"Ana"}},
				{State: models.ActivityStateFinalizada, Assignees: []string{"Ana"}},
			}},
			// actividad finalizada dentro de una OT aún en proceso:
			// sin crédito
			{ID: "2", Auth: models.AuthAuthorized, Activities: []Activity{
				{State: models.ActivityStateFinalizada, Assignees: []string{"Beto"}},
				{State: models.ActivityStateEnProgreso, Assignees: []string{"Carla"}},
			}},
		}
		records := Aggregate(orders)
		require.Equal(t, 2, findRecord(t, records, "Ana").CompletedCount)
		require.Equal(t, 0, findRecord(t, records, "Beto").CompletedCount)
		require.Equal(t, 1, findRecord(t, records, "Beto").FinishedCount)
	})

	t.Run(`quien nunca fue asignado no aparece`, func(t *testing.T) {
		records := Aggregate([]Order{{
			ID:   "1",
			Auth: models.AuthAuthorized,
			Activities: []Activity{
				{State: models.ActivityStateFinalizada, Assignees: []string{"Ana"}},
				{State: models.ActivityStatePendiente, Assignees: nil},
			},
		}})
		require.Len(t, records, 1)
		require.Equal(t, "Ana", records[0].Name)
	})

	t.Run(`sin actividades activas el porcentaje queda en cero`, func(t *testing.T) {
		records := Aggregate([]Order{{
			ID:   "1",
			Auth: models.AuthAuthorized,
			Activities: []Activity{
				{State: models.ActivityStateFinalizada, Assignees: []string{"Ana"}},
			},
		}})
		ana := findRecord(t, records, "Ana")
		require.Equal(t, 0, ana.ActiveCount)
		require.Equal(t, 0, ana.WorkloadPercentage)
		require.Empty(t, ana.CurrentOTs)
	})
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "jose perez", NormalizeName("  José Pérez "))
	require.Equal(t, "nunez", NormalizeName("Núñez"))
	require.Equal(t, "", NormalizeName("   "))
}
