package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleSalesAgent = "sales_agent"
	RoleEmployee   = "employee"
)

// User representa un usuario del sistema (empleado, agente o administrador).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Phone        string
	Avatar       string
	City         string
	State        string
	Pincode      string
	Role         string   // admin, manager, sales_agent, employee
	Permissions  []string // secciones de la UI permitidas
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre completo para descripciones y notificaciones.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsPrivileged indica si el rol ve todos los registros (admin o manager).
func (u *User) IsPrivileged() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}
