package models

// User is a board member. Users are loaded with the board and never change.
type User struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Avatar string `yaml:"avatar" json:"avatar"` // URI of the avatar image
	Role   string `yaml:"role" json:"role"`
}

// Initials returns the first letter of up to two words of the user's name
func (u *User) Initials() string {
	var initials []rune
	word := true
	for _, r := range u.Name {
		if r == ' ' {
			word = true
			continue
		}
		if word {
			initials = append(initials, r)
			word = false
			if len(initials) == 2 {
				break
			}
		}
	}
	return string(initials)
}
