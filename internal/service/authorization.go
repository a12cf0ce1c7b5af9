package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ads-board/internal/store"
	"github.com/MKhiriev/go-ads-board/models"
)

// Access is the privilege an operation requires.
type Access int

const (
	// AccessAuthenticated requires any signed-in user.
	AccessAuthenticated Access = iota
	// AccessOwner requires the signed-in user to own the record. The
	// administrator flag grants nothing here.
	AccessOwner
	// AccessAdmin requires the administrator flag. Ownership is ignored.
	AccessAdmin
)

func (a Access) String() string {
	switch a {
	case AccessAuthenticated:
		return "authenticated"
	case AccessOwner:
		return "owner"
	case AccessAdmin:
		return "admin"
	default:
		return fmt.Sprintf("Access(%d)", int(a))
	}
}

// Authorize is the single authorization predicate shared by the HTTP and RPC
// surfaces. ownerID is only consulted for AccessOwner.
//
// Anonymous identities fail with ErrUnauthenticated, everything else that is
// not allowed fails with ErrAccessDenied.
func Authorize(identity models.Identity, ownerID int64, access Access) error {
	if !identity.IsAuthenticated() {
		return ErrUnauthenticated
	}

	switch access {
	case AccessAuthenticated:
		return nil
	case AccessOwner:
		if ownerID != 0 && identity.UserID == ownerID {
			return nil
		}
	case AccessAdmin:
		if identity.IsAdmin {
			return nil
		}
	}

	return ErrAccessDenied
}

// authorizeAdmin re-reads the administrator flag from the store so that a
// revoked flag stops working before the session expires.
func authorizeAdmin(ctx context.Context, users store.UserRepository, identity models.Identity) error {
	if err := Authorize(identity, 0, AccessAuthenticated); err != nil {
		return err
	}

	current, err := users.FindUserByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUnauthenticated
		}
		return fmt.Errorf("error loading requester: %w", err)
	}

	identity.IsAdmin = current.IsAdmin
	return Authorize(identity, 0, AccessAdmin)
}
