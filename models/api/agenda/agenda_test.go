package agendaapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInterviewRequestValidate(t *testing.T) {
	inicio := time.Now().Add(time.Hour)
	fim := inicio.Add(time.Hour)

	t.Run(`valid request check`, func(t *testing.T) {
		r := InterviewRequest{CandidatoID: "id", Inicio: inicio, Fim: fim}
		require.NoError(t, r.Validate())
	})

	t.Run(`missing candidato check`, func(t *testing.T) {
		r := InterviewRequest{Inicio: inicio, Fim: fim}
		require.Error(t, r.Validate())
	})

	t.Run(`missing interval check`, func(t *testing.T) {
		r := InterviewRequest{CandidatoID: "id"}
		require.Error(t, r.Validate())
	})

	t.Run(`end before start check`, func(t *testing.T) {
		r := InterviewRequest{CandidatoID: "id", Inicio: fim, Fim: inicio}
		require.Error(t, r.Validate())
	})

	t.Run(`interview in the past check`, func(t *testing.T) {
		r := InterviewRequest{CandidatoID: "id", Inicio: time.Now().Add(-2 * time.Hour), Fim: time.Now().Add(-time.Hour)}
		require.Error(t, r.Validate())
	})
}
