package responses

type Theme struct {
	Theme string `json:"theme"`
}
