package sections

type CreateInput struct {
	Title  string `json:"title"`
	Hidden bool   `json:"hidden"`
	Order  int    `json:"order"`
}
