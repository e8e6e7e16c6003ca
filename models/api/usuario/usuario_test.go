package usuarioapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"talentos-backend/models"
)

func TestUsuarioDataValidate(t *testing.T) {
	valid := UsuarioData{
		Nome:     "Ana",
		Email:    "ana@talentos.app",
		Password: "senha-forte",
		Role:     models.UserRoleRecrutador,
	}

	t.Run(`valid new user check`, func(t *testing.T) {
		require.NoError(t, valid.Validate(true))
	})

	t.Run(`missing nome check`, func(t *testing.T) {
		data := valid
		data.Nome = ""
		require.Error(t, data.Validate(true))
	})

	t.Run(`missing email check`, func(t *testing.T) {
		data := valid
		data.Email = ""
		require.Error(t, data.Validate(true))
	})

	t.Run(`short password on create check`, func(t *testing.T) {
		data := valid
		data.Password = "curta"
		require.Error(t, data.Validate(true))
	})

	t.Run(`empty password allowed on update check`, func(t *testing.T) {
		data := valid
		data.Password = ""
		require.NoError(t, data.Validate(false))
	})

	t.Run(`invalid role check`, func(t *testing.T) {
		data := valid
		data.Role = "gerente"
		require.Error(t, data.Validate(true))
	})
}
