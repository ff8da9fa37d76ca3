package domain

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Roles    []Role `json:"roles"`
	IsActive bool   `json:"isActive"`
}

func (u User) EntityID() string { return u.ID }

// HasAnyRole 判断用户是否拥有 roles 中的任意一个角色
func (u User) HasAnyRole(roles []Role) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
