package models

import "encoding/json"

// RPCRequest is a single call on the RPC facade.
type RPCRequest struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// RPCParams holds every primitive argument accepted by the facade methods.
// Each method reads only the fields it needs.
type RPCParams struct {
	ID      int64  `json:"id,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// RPCResponse is either a success or an error record, never both.
type RPCResponse struct {
	Success bool   `json:"success,omitempty"`
	ID      int64  `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}
