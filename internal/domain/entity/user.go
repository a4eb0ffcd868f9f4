package entity

// User usuario administrado desde el módulo de usuarios. El rol se valida contra
// la lista cerrada de roles antes de enviarse al API.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"required,role"`
	ProjectID string `json:"project_id,omitempty"`
	Active    bool   `json:"active"`
}

func (u User) RecordID() string { return u.ID }

func (u User) SearchText() []string {
	return []string{u.Name, u.Email, u.Role}
}

func (u User) Attribute(name string) (string, bool) {
	switch name {
	case "role":
		return known(u.Role)
	case "project_id":
		return known(u.ProjectID)
	}
	return "", false
}
