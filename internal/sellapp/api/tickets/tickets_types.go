package tickets

type Author string

const (
	AuthorCustomer Author = "CUSTOMER"
	AuthorStore    Author = "STORE"
)

var Authors = []Author{AuthorCustomer, AuthorStore}

type MessageInput struct {
	Content string `json:"content"`
	Author  Author `json:"author,omitempty"`
}
