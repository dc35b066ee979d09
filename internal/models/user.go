package models

type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Session is the authenticated identity held by the session store.
type Session struct {
	User               *User  `json:"user,omitempty"`
	Token              string `json:"token"`
	OnboardingComplete bool   `json:"onboarding_complete"`
}

// Authenticated reports whether a usable bearer token is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
