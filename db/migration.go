package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "talentos-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Iniciando migrações")
	if err := DB.AutoMigrate(&dbmodels.Usuario{}); err != nil {
		return errors.Wrap(err, "erro ao criar a estrutura Usuario")
	}
	if err := DB.AutoMigrate(&dbmodels.Cliente{}); err != nil {
		return errors.Wrap(err, "erro ao criar a estrutura Cliente")
	}
	if err := DB.AutoMigrate(&dbmodels.Vaga{}); err != nil {
		return errors.Wrap(err, "erro ao criar a estrutura Vaga")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidato{}); err != nil {
		return errors.Wrap(err, "erro ao criar a estrutura Candidato")
	}
	if err := DB.AutoMigrate(&dbmodels.Evento{}); err != nil {
		return errors.Wrap(err, "erro ao criar a estrutura Evento")
	}
	if err := DB.AutoMigrate(&dbmodels.ShareLink{}); err != nil {
		return errors.Wrap(err, "erro ao criar a estrutura ShareLink")
	}
	if err := DB.AutoMigrate(&dbmodels.Notificacao{}); err != nil {
		return errors.Wrap(err, "erro ao criar a estrutura Notificacao")
	}
	if err := DB.AutoMigrate(&dbmodels.AgendaToken{}); err != nil {
		return errors.Wrap(err, "erro ao criar a estrutura AgendaToken")
	}
	if err := DB.AutoMigrate(&dbmodels.Arquivo{}); err != nil {
		return errors.Wrap(err, "erro ao criar a estrutura Arquivo")
	}
	if err := createKpiView(); err != nil {
		return errors.Wrap(err, "erro ao criar a view materializada de KPI")
	}
	log.Info("Migrações executadas com sucesso")
	return nil
}

// createKpiView materializa os agregados do dashboard. O worker de KPI faz o
// refresh periódico; o índice único é exigido pelo REFRESH CONCURRENTLY.
func createKpiView() error {
	err := DB.Exec(`
		CREATE MATERIALIZED VIEW IF NOT EXISTS kpi_vagas AS
		SELECT v.stage_slug,
		       count(*)                                                      AS total,
		       avg(extract(epoch FROM now() - v.last_stage_change_at))/86400 AS media_dias_na_etapa
		FROM vagas v
		WHERE v.deleted_at IS NULL
		GROUP BY v.stage_slug;
	`).Error
	if err != nil {
		return err
	}
	return DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_kpi_vagas_stage ON kpi_vagas (stage_slug);").Error
}
