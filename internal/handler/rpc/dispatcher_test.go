package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/mock"
	"github.com/MKhiriev/go-ads-board/internal/service"
	"github.com/MKhiriev/go-ads-board/internal/store"
	"github.com/MKhiriev/go-ads-board/models"
)

var alice = models.Identity{UserID: 1, SessionID: "s"}

func newTestDispatcher(t *testing.T) (*Dispatcher, *mock.MockAdService, *mock.MockUserService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ads := mock.NewMockAdService(ctrl)
	users := mock.NewMockUserService(ctrl)
	return NewDispatcher(ads, users, logger.Nop()), ads, users
}

func request(method string, params any) models.RPCRequest {
	raw, _ := json.Marshal(params)
	return models.RPCRequest{Method: method, Params: raw}
}

func TestDispatcher_Methods(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	got := d.Methods()
	sort.Strings(got)
	assert.Equal(t, []string{
		"ad.create", "ad.delete", "ad.edit",
		"admin.delete_post", "admin.delete_user",
		"post.create", "post.delete", "post.edit",
	}, got)
}

func TestDispatcher_CreateAliases(t *testing.T) {
	for _, method := range []string{MethodAdCreate, MethodPostCreate} {
		t.Run(method, func(t *testing.T) {
			d, ads, _ := newTestDispatcher(t)
			ctx := context.Background()

			ads.EXPECT().CreateAd(ctx, alice, models.AdDraft{Title: "sofa", Content: "free"}).
				Return(models.Ad{ID: 7}, nil)

			resp := d.Call(ctx, alice, request(method, models.RPCParams{Title: "sofa", Content: "free"}))
			assert.Equal(t, models.RPCResponse{Success: true, ID: 7}, resp)
		})
	}
}

func TestDispatcher_EditAndDelete(t *testing.T) {
	d, ads, _ := newTestDispatcher(t)
	ctx := context.Background()

	ads.EXPECT().EditAd(ctx, alice, int64(7), models.AdDraft{Title: "t", Content: "c"}).Return(models.Ad{ID: 7}, nil)
	ads.EXPECT().DeleteAd(ctx, alice, int64(7)).Return(nil)

	assert.True(t, d.Call(ctx, alice, request(MethodPostEdit, models.RPCParams{ID: 7, Title: "t", Content: "c"})).Success)
	assert.True(t, d.Call(ctx, alice, request(MethodAdDelete, models.RPCParams{ID: 7})).Success)
}

func TestDispatcher_AdminMethods(t *testing.T) {
	d, ads, users := newTestDispatcher(t)
	ctx := context.Background()
	root := models.Identity{UserID: 9, IsAdmin: true}

	ads.EXPECT().DeleteAdAsAdmin(ctx, root, int64(3)).Return(nil)
	users.EXPECT().DeleteUser(ctx, root, int64(4)).Return(nil)

	assert.Equal(t, models.RPCResponse{Success: true, ID: 3}, d.Call(ctx, root, request(MethodAdminDeletePost, models.RPCParams{ID: 3})))
	assert.Equal(t, models.RPCResponse{Success: true, ID: 4}, d.Call(ctx, root, request(MethodAdminDeleteUser, models.RPCParams{ID: 4})))
}

func TestDispatcher_Errors(t *testing.T) {
	d, ads, _ := newTestDispatcher(t)
	ctx := context.Background()

	assert.Equal(t, MessageMethodNotFound, d.Call(ctx, alice, models.RPCRequest{Method: "ad.explode"}).Error)
	assert.Equal(t, MessageInvalidParams, d.Call(ctx, alice, models.RPCRequest{Method: MethodAdEdit, Params: json.RawMessage(`[1,2]`)}).Error)
	assert.Equal(t, MessageInvalidParams, d.Call(ctx, alice, request(MethodAdDelete, models.RPCParams{})).Error)

	ads.EXPECT().DeleteAd(ctx, alice, int64(5)).Return(service.ErrAccessDenied)
	resp := d.Call(ctx, alice, request(MethodAdDelete, models.RPCParams{ID: 5}))
	assert.Equal(t, models.RPCResponse{Error: MessageAccessDenied}, resp)

	ads.EXPECT().DeleteAd(ctx, alice, int64(6)).Return(errors.New("pq: relation \"ads\" does not exist"))
	resp = d.Call(ctx, alice, request(MethodAdDelete, models.RPCParams{ID: 6}))
	assert.Equal(t, MessageInternal, resp.Error, "raw database errors never reach the client")
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{service.ErrUnauthenticated, MessageUnauthenticated},
		{service.ErrAccessDenied, MessageAccessDenied},
		{store.ErrAdNotFound, MessageNotFound},
		{store.ErrUserNotFound, MessageNotFound},
		{service.ErrInvalidDataProvided, MessageInvalidData},
		{errMissingID, MessageInvalidParams},
		{errors.New("boom"), MessageInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorMessage(tt.err), tt.err.Error())
	}
}
