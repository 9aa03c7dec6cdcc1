package models

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterPayload struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	OfficeID             int    `json:"office_id,omitempty"`
}

// LoginResponse captures the token and profile returned by POST /login.
// Some deployments nest the user under "data", hence the two shapes.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
	Data  struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	} `json:"data"`
}

// Session flattens whichever shape the backend used.
func (r LoginResponse) Session() (token string, user User) {
	if r.Token != "" {
		return r.Token, r.User
	}
	return r.Data.Token, r.Data.User
}
