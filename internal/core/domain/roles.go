package domain

// Roles carried in the bearer tokens issued by the identity service.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)
