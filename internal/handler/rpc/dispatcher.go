// Package rpc maps the method-name surface of the board onto the service
// layer. It is transport agnostic: the HTTP endpoint and the gRPC service
// both resolve the caller's identity and hand the call to a [Dispatcher].
package rpc

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/go-ads-board/internal/app"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/service"
	"github.com/MKhiriev/go-ads-board/internal/store"
	"github.com/MKhiriev/go-ads-board/models"
)

// Method names accepted by [Dispatcher.Call]. The post.* names are kept as
// aliases of ad.*.
const (
	MethodPostCreate      = "post.create"
	MethodPostEdit        = "post.edit"
	MethodPostDelete      = "post.delete"
	MethodAdCreate        = "ad.create"
	MethodAdEdit          = "ad.edit"
	MethodAdDelete        = "ad.delete"
	MethodAdminDeleteUser = "admin.delete_user"
	MethodAdminDeletePost = "admin.delete_post"
)

// Generic messages returned in [models.RPCResponse.Error].
const (
	MessageMethodNotFound  = "method not found"
	MessageInvalidParams   = "invalid params"
	MessageUnauthenticated = app.MsgAuthenticationRequired
	MessageAccessDenied    = app.MsgAccessDenied
	MessageNotFound        = app.MsgNotFound
	MessageInvalidData     = app.MsgInvalidDataProvided
	MessageInternal        = app.MsgInternalServerError
)

var errMissingID = errors.New("id is required")

type method func(ctx context.Context, identity models.Identity, params models.RPCParams) (int64, error)

// Dispatcher routes RPC calls to the same service methods the HTTP handlers
// use, so both surfaces share one authorization path.
type Dispatcher struct {
	ads   service.AdService
	users service.UserService

	methods map[string]method

	logger *logger.Logger
}

func NewDispatcher(ads service.AdService, users service.UserService, logger *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		ads:    ads,
		users:  users,
		logger: logger,
	}

	d.methods = map[string]method{
		MethodPostCreate:      d.createAd,
		MethodPostEdit:        d.editAd,
		MethodPostDelete:      d.deleteAd,
		MethodAdCreate:        d.createAd,
		MethodAdEdit:          d.editAd,
		MethodAdDelete:        d.deleteAd,
		MethodAdminDeleteUser: d.deleteUser,
		MethodAdminDeletePost: d.deleteAdAsAdmin,
	}

	return d
}

// Call executes one request on behalf of identity. It never returns a Go
// error; failures are reported in the response with a generic message.
func (d *Dispatcher) Call(ctx context.Context, identity models.Identity, request models.RPCRequest) models.RPCResponse {
	log := logger.FromContext(ctx)

	m, ok := d.methods[request.Method]
	if !ok {
		return models.RPCResponse{Error: MessageMethodNotFound}
	}

	var params models.RPCParams
	if len(request.Params) > 0 {
		if err := json.Unmarshal(request.Params, &params); err != nil {
			return models.RPCResponse{Error: MessageInvalidParams}
		}
	}

	id, err := m(ctx, identity, params)
	if err != nil {
		message := ErrorMessage(err)
		if message == MessageInternal {
			log.Err(err).Str("method", request.Method).Msg("rpc call failed")
		}
		return models.RPCResponse{Error: message}
	}

	return models.RPCResponse{Success: true, ID: id}
}

// Methods lists the registered method names.
func (d *Dispatcher) Methods() []string {
	names := make([]string, 0, len(d.methods))
	for name := range d.methods {
		names = append(names, name)
	}
	return names
}

// ErrorMessage maps a service error to the generic text sent to RPC clients.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, errMissingID):
		return MessageInvalidParams
	case errors.Is(err, service.ErrUnauthenticated):
		return MessageUnauthenticated
	case errors.Is(err, service.ErrAccessDenied):
		return MessageAccessDenied
	case errors.Is(err, store.ErrAdNotFound), errors.Is(err, store.ErrUserNotFound):
		return MessageNotFound
	case errors.Is(err, service.ErrInvalidDataProvided):
		return MessageInvalidData
	default:
		return MessageInternal
	}
}

func (d *Dispatcher) createAd(ctx context.Context, identity models.Identity, params models.RPCParams) (int64, error) {
	ad, err := d.ads.CreateAd(ctx, identity, models.AdDraft{Title: params.Title, Content: params.Content})
	if err != nil {
		return 0, err
	}
	return ad.ID, nil
}

func (d *Dispatcher) editAd(ctx context.Context, identity models.Identity, params models.RPCParams) (int64, error) {
	if params.ID <= 0 {
		return 0, errMissingID
	}
	ad, err := d.ads.EditAd(ctx, identity, params.ID, models.AdDraft{Title: params.Title, Content: params.Content})
	if err != nil {
		return 0, err
	}
	return ad.ID, nil
}

func (d *Dispatcher) deleteAd(ctx context.Context, identity models.Identity, params models.RPCParams) (int64, error) {
	if params.ID <= 0 {
		return 0, errMissingID
	}
	return params.ID, d.ads.DeleteAd(ctx, identity, params.ID)
}

func (d *Dispatcher) deleteAdAsAdmin(ctx context.Context, identity models.Identity, params models.RPCParams) (int64, error) {
	if params.ID <= 0 {
		return 0, errMissingID
	}
	return params.ID, d.ads.DeleteAdAsAdmin(ctx, identity, params.ID)
}

func (d *Dispatcher) deleteUser(ctx context.Context, identity models.Identity, params models.RPCParams) (int64, error) {
	if params.ID <= 0 {
		return 0, errMissingID
	}
	return params.ID, d.users.DeleteUser(ctx, identity, params.ID)
}
