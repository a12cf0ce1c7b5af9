package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-ads-board/internal/handler/rpc"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/utils"
	"github.com/MKhiriev/go-ads-board/models"
)

// callRPC serves the RPC facade over HTTP. The caller is identified by the
// session cookie like any other request. Outcomes are reported in the body,
// so every decoded call is answered with 200 OK.
func (h *Handler) callRPC(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RPCRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("invalid rpc request body")
		utils.WriteJSON(w, models.RPCResponse{Error: rpc.MessageInvalidParams}, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, h.dispatcher.Call(r.Context(), identity(r), request), http.StatusOK)
}
