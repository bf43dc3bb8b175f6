package model

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "gestor"
	RoleFiscal  UserRole = "fiscal"
	RoleViewer  UserRole = "visualizador"
)

var roleLabels = map[UserRole]string{
	RoleAdmin:   "Administrador",
	RoleManager: "Gestor",
	RoleFiscal:  "Fiscal",
	RoleViewer:  "Visualizador",
}

func (r UserRole) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(r)
}

type UserStatus string

const (
	UserActive   UserStatus = "ativo"
	UserInactive UserStatus = "inativo"
)

type AdminUser struct {
	ID        string     `json:"id" yaml:"id" validate:"required"`
	Name      string     `json:"name" yaml:"name" validate:"required"`
	Email     string     `json:"email" yaml:"email" validate:"required,email"`
	Role      UserRole   `json:"role" yaml:"role" validate:"required,oneof=admin gestor fiscal visualizador"`
	Status    UserStatus `json:"status" yaml:"status" validate:"required,oneof=ativo inativo"`
	CreatedAt string     `json:"created_at" yaml:"created_at" validate:"required,datetime=2006-01-02"`
	LastLogin *string    `json:"last_login" yaml:"last_login" validate:"omitempty,datetime=2006-01-02"`
}

func (u AdminUser) Clone() AdminUser {
	out := u
	if u.LastLogin != nil {
		last := *u.LastLogin
		out.LastLogin = &last
	}
	return out
}

func CloneUsers(list []AdminUser) []AdminUser {
	out := make([]AdminUser, len(list))
	for i, u := range list {
		out[i] = u.Clone()
	}
	return out
}

type Permission struct {
	ID     string `json:"id" yaml:"id" validate:"required"`
	Key    string `json:"key" yaml:"key" validate:"required"`
	Label  string `json:"label" yaml:"label" validate:"required"`
	Module string `json:"module" yaml:"module" validate:"required"`
}

type AdminProfile struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Description string   `json:"description" yaml:"description"`
	Permissions []string `json:"permissions" yaml:"permissions"`
	UsersCount  int      `json:"users_count" yaml:"users_count" validate:"gte=0"`
}

func (p AdminProfile) Clone() AdminProfile {
	out := p
	out.Permissions = make([]string, len(p.Permissions))
	copy(out.Permissions, p.Permissions)
	return out
}

// PortalSettings is the organisation-level configuration edited from the admin area.
type PortalSettings struct {
	OrgName             string `json:"org_name" yaml:"org_name" validate:"required"`
	OrgEmail            string `json:"org_email" yaml:"org_email" validate:"omitempty,email"`
	OrgPhone            string `json:"org_phone" yaml:"org_phone"`
	OrgDescription      string `json:"org_description" yaml:"org_description"`
	EmailNotifications  bool   `json:"email_notifications" yaml:"email_notifications"`
	UpdateAlerts        bool   `json:"update_alerts" yaml:"update_alerts"`
	DeadlineAlerts      bool   `json:"deadline_alerts" yaml:"deadline_alerts"`
	WeeklyReport        bool   `json:"weekly_report" yaml:"weekly_report"`
	MaxUsersPerProfile  int    `json:"max_users_per_profile" yaml:"max_users_per_profile" validate:"gte=1"`
	UpdateFrequencyDays int    `json:"update_frequency_days" yaml:"update_frequency_days" validate:"gte=1"`
	SessionTimeoutMin   int    `json:"session_timeout_min" yaml:"session_timeout_min" validate:"gte=1"`
	DefaultLanguage     string `json:"default_language" yaml:"default_language"`
	TwoFactor           bool   `json:"two_factor" yaml:"two_factor"`
	PasswordExpiryDays  int    `json:"password_expiry_days" yaml:"password_expiry_days" validate:"gte=0"`
	MinPasswordLength   int    `json:"min_password_length" yaml:"min_password_length" validate:"gte=6"`
}
