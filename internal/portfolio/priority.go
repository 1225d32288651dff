package portfolio

import "encoding/json"

// Priority é a prioridade de exibição de um certificado, armazenada como
// inteiro no banco e exposta como nome na API. O mapeamento é bidirecional
// e tipado; valores numéricos desconhecidos serializam como LOW.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

var priorityNames = map[Priority]string{
	PriorityLow:    "LOW",
	PriorityMedium: "MEDIUM",
	PriorityHigh:   "HIGH",
}

var priorityValues = map[string]Priority{
	"LOW":    PriorityLow,
	"MEDIUM": PriorityMedium,
	"HIGH":   PriorityHigh,
}

// ParsePriority converte o nome da API no valor armazenado.
func ParsePriority(name string) (Priority, bool) {
	p, ok := priorityValues[name]
	return p, ok
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "LOW"
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}
