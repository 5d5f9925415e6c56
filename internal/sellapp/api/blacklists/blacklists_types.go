package blacklists

type Type string

const (
	TypeEmail   Type = "EMAIL"
	TypeIP      Type = "IP"
	TypeCountry Type = "COUNTRY"
)

var Types = []Type{TypeEmail, TypeIP, TypeCountry}

type Input struct {
	Type        Type   `json:"type"`
	Data        string `json:"data"`
	Description string `json:"description"`
}
