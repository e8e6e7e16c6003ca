package models

type EntityKind string

const (
	EntityVaga      EntityKind = "vaga"
	EntityCandidato EntityKind = "candidato"
	EntityCliente   EntityKind = "cliente"
)

type StageKind string

const (
	StageNormal   StageKind = "normal"
	StageFinal    StageKind = "final"
	StageFrozen   StageKind = "congelada"
	StageCanceled StageKind = "cancelada"
)

// IsTerminal indica etapas que encerram o fluxo organico do funil.
func (k StageKind) IsTerminal() bool {
	return k == StageFinal || k == StageFrozen || k == StageCanceled
}

type EventType string

const (
	EventTypeStageChange EventType = "stage_change" // movido de etapa no funil
	EventTypeCreated     EventType = "created"      // registro criado
	EventTypeUpdated     EventType = "updated"      // registro atualizado
	EventTypeComment     EventType = "comment"      // comentario adicionado
	EventTypeLinked      EventType = "linked"       // candidato vinculado a vaga
	EventTypeUnlinked    EventType = "unlinked"     // candidato desvinculado da vaga
	EventTypeApplication EventType = "application"  // candidatura via link publico
	EventTypeStaleAlert  EventType = "stale_alert"  // vaga sem movimentacao
	EventTypeInterview   EventType = "interview"    // entrevista agendada
	EventTypeArchived    EventType = "archived"     // registro arquivado
)

type CandidatoOrigem string

const (
	OrigemIndicacao  CandidatoOrigem = "indicacao"
	OrigemLinkedIn   CandidatoOrigem = "linkedin"
	OrigemHunting    CandidatoOrigem = "hunting"
	OrigemLinkVaga   CandidatoOrigem = "link_vaga"
	OrigemBancoTalen CandidatoOrigem = "banco_talentos"
)
