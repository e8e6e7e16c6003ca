package models

type FileType string

const (
	FileTypeCurriculo FileType = "curriculo"
	FileTypeDocumento FileType = "documento"
)
