package requests

type UpdateTheme struct {
	Theme string `json:"theme" validate:"required,theme"`
}
