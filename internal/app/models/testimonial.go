package models

type Testimonial struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
	Quote  string `json:"quote"`
}
