package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseActivityState(t *testing.T) {
	t.Run(`vocabulario canónico`, func(t *testing.T) {
		cases := map[string]ActivityState{
			"pendiente":   ActivityStatePendiente,
			"en_progreso": ActivityStateEnProgreso,
			"finalizada":  ActivityStateFinalizada,
		}
		for value, expected := range cases {
			state, ok := ParseActivityState(value)
			require.True(t, ok, value)
			require.Equal(t, expected, state)
		}
	})

	t.Run(`vocabulario heredado`, func(t *testing.T) {
		cases := map[string]ActivityState{
			"CREATED": ActivityStatePendiente,
			"STARTED": ActivityStateEnProgreso,
			"END":     ActivityStateFinalizada,
		}
		for value, expected := range cases {
			state, ok := ParseActivityState(value)
			require.True(t, ok, value)
			require.Equal(t, expected, state)
		}
	})

	t.Run(`valores desconocidos`, func(t *testing.T) {
		for _, value := range []string{"", "Pendiente", "started", "done"} {
			_, ok := ParseActivityState(value)
			require.False(t, ok, value)
		}
	})
}

func TestActivityStateCanTransition(t *testing.T) {
	t.Run(`un paso adelante o atrás`, func(t *testing.T) {
		require.True(t, ActivityStatePendiente.CanTransition(ActivityStateEnProgreso))
		require.True(t, ActivityStateEnProgreso.CanTransition(ActivityStateFinalizada))
		require.True(t, ActivityStateEnProgreso.CanTransition(ActivityStatePendiente))
	})

	t.Run(`sin saltos`, func(t *testing.T) {
		require.False(t, ActivityStatePendiente.CanTransition(ActivityStateFinalizada))
	})

	t.Run(`finalizada es terminal`, func(t *testing.T) {
		require.False(t, ActivityStateFinalizada.CanTransition(ActivityStateEnProgreso))
		require.False(t, ActivityStateFinalizada.CanTransition(ActivityStatePendiente))
	})

	t.Run(`estados desconocidos no transicionan`, func(t *testing.T) {
		require.False(t, ActivityState("otro").CanTransition(ActivityStateEnProgreso))
		require.False(t, ActivityStatePendiente.CanTransition(ActivityState("otro")))
		require.False(t, ActivityStatePendiente.CanTransition(ActivityStatePendiente))
	})
}
