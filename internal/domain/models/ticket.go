package models

import "time"

type (
	// RawTicket es el payload sin modificar de un ticket del servicio TDX.
	// Solo se modelan los campos que consume el normalizador.
	RawTicket struct {
		ID            int               `json:"ID"`
		Title         string            `json:"Title"`
		StatusName    string            `json:"StatusName"`
		RequestorName string            `json:"RequestorName"`
		CreatedDate   time.Time         `json:"CreatedDate"`
		Attributes    []TicketAttribute `json:"Attributes"`
		Tasks         []TicketTask      `json:"Tasks"`
	}

	// TicketAttribute es un campo nombrado del ticket, con valor de texto libre
	TicketAttribute struct {
		ID        int    `json:"ID"`
		Name      string `json:"Name"`
		ValueText string `json:"ValueText"`
	}

	// TicketTask es una tarea anidada del ticket (presente en el payload,
	// no consumida por la exportación)
	TicketTask struct {
		ID    int    `json:"ID"`
		Title string `json:"Title"`
	}
)

// Attribute busca un atributo por nombre y retorna su texto.
// El segundo valor indica si el atributo existe en el payload.
func (t *RawTicket) Attribute(name string) (string, bool) {
	for _, attr := range t.Attributes {
		if attr.Name == name {
			return attr.ValueText, true
		}
	}
	return "", false
}
