package domain

// Role 管理员角色，super_admin 才能创建新管理员
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type Admin struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      Role
	// Permissions 细粒度权限位，目前只做存储和透出
	Permissions []string
	Avatar      string
	Active      bool
	LastLogin   int64
	Ctime       int64
	Utime       int64
}

func (a Admin) FullName() string {
	return a.FirstName + " " + a.LastName
}
