package requests

// Field rules are enforced by the identity provider so that every failure
// maps to its own outcome.
type SignUp struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SignIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RequestPasswordReset struct {
	Email string `json:"email"`
}

type ResetPassword struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}
