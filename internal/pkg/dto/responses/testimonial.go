package responses

type Testimonial struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
	Quote  string `json:"quote"`
	Index  int    `json:"index"`
	Total  int    `json:"total"`
	// AutoAdvanceSeconds tells clients how often to request the next one.
	AutoAdvanceSeconds int `json:"auto_advance_seconds"`
}
