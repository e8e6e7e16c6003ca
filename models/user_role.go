package models

type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleRecrutador UserRole = "recrutador"
)
