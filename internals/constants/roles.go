package constants

const (
	RoleAdmin = "admin"
)
