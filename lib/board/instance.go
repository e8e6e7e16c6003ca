package board

// Instance é o cache de kanban compartilhado entre os handlers de vaga e de
// candidato; a chave do board é o id da vaga.
var Instance = NewCache()
