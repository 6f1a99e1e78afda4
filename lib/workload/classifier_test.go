package workload

import (
	"testing"

	"github.com/stretchr/testify/require"

	"labo-isometeer-backend/models"
)

func TestClassify(t *testing.T) {
	t.Run(`anulado gana siempre, sin importar las actividades`, func(t *testing.T) {
		orders := []Order{
			{Auth: models.AuthCancelled},
			{Auth: models.AuthCancelled, Activities: []Activity{
				{State: models.ActivityStateEnProgreso, Assignees: []string{"Ana"}},
			}},
			{Auth: models.AuthCancelled, Activities: []Activity{
				{State: "cualquier_cosa"},
			}},
		}
		for _, o := range orders {
			require.Equal(t, models.OTStatusAnulado, Classify(o))
		}
	})

	t.Run(`sin autorizar antes que cualquier estado de actividad`, func(t *testing.T) {
		o := Order{Auth: models.AuthPending, Activities: []Activity{
			{State: models.ActivityStateEnProgreso, Assignees: []string{"Ana"}},
		}}
		require.Equal(t, models.OTStatusSinAutorizar, Classify(o))
	})

	t.Run(`actividad sin asignar pesa más que el avance`, func(t *testing.T) {
		o := Order{Auth: models.AuthAuthorized, Activities: []Activity{
			{State: models.ActivityStateEnProgreso, Assignees: []string{"Ana"}},
			{State: models.ActivityStatePendiente, Assignees: []string{}},
		}}
		require.Equal(t, models.OTStatusSinAsignar, Classify(o))
	})

	t.Run(`pendiente se evalúa antes que en progreso`, func(t *testing.T) {
		o := Order{Auth: models.AuthAuthorized, Activities: []Activity{
			{State: models.ActivityStateEnProgreso, Assignees: []string{"Ana"}},
			{State: models.ActivityStatePendiente, Assignees: []string{"Ana", "Beto"}},
		}}
		require.Equal(t, models.OTStatusEnEspera, Classify(o))
	})

	t.Run(`en progreso cuando no queda nada pendiente`, func(t *testing.T) {
		o := Order{Auth: models.AuthAuthorized, Activities: []Activity{
			{State: models.ActivityStateEnProgreso, Assignees: []string{"Ana"}},
			{State: models.ActivityStateFinalizada, Assignees: []string{"Beto"}},
		}}
		require.Equal(t, models.OTStatusEnProceso, Classify(o))
	})

	t.Run(`todo finalizado`, func(t *testing.T) {
		o := Order{Auth: models.AuthAuthorized, Activities: []Activity{
			{State: models.ActivityStateFinalizada, Assignees: []string{"Ana"}},
		}}
		require.Equal(t, models.OTStatusTerminadas, Classify(o))
	})

	t.Run(`datos degenerados degradan a terminadas`, func(t *testing.T) {
		orders := []Order{
			{Auth: models.AuthAuthorized},
			{Auth: models.AuthAuthorized, Activities: []Activity{}},
			{Auth: models.AuthAuthorized, Activities: []Activity{
				{State: "", Assignees: []string{"Ana"}},
			}},
			{Auth: models.AuthAuthorized, Activities: []Activity{
				{State: "ESTADO_RARO", Assignees: []string{"Ana"}},
			}},
			// valor de autorización fuera del tri-estado
			{Auth: models.AuthState(7)},
		}
		for _, o := range orders {
			require.NotPanics(t, func() { Classify(o) })
			require.Equal(t, models.OTStatusTerminadas, Classify(o))
		}
	})
}
