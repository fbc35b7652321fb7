package models

import "time"

// ChatRequest is the message event emitted by the conversational widget:
// the user's free text plus any entities the widget already extracted.
type ChatRequest struct {
	Mensaje  string            `json:"mensaje" validate:"required"`
	Entities map[string]string `json:"entities,omitempty"`
}

// ChatResponse carries the plain-text reply injected back into the widget.
type ChatResponse struct {
	Respuesta            string    `json:"respuesta"`
	ProductosEncontrados int       `json:"productos_encontrados"`
	Timestamp            time.Time `json:"timestamp"`
}
