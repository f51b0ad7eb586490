package domain

// Role is the host permission level of a user.
type Role string

const (
	RolePlayer Role = "player"
	RoleGM     Role = "gm"
)

// User is the caller of an operation as reported by the host.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        Role   `json:"role"`
	CharacterID string `json:"characterId,omitempty"`
}

func (u User) IsGM() bool {
	return u.Role == RoleGM
}

// CanEdit reports whether the user may change recipes. Players need the
// world-level permission flag.
func (u User) CanEdit(allowPlayerEdit bool) bool {
	return u.IsGM() || allowPlayerEdit
}
