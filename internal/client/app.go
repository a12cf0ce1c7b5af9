package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-ads-board/internal/adapter"
	"github.com/MKhiriev/go-ads-board/internal/handler/rpc"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/models"
)

// Usage lists the commands understood by [App.Run].
const Usage = `commands:
  version
  create <title> <content>
  edit <id> <title> <content>
  delete <id>
  admin-delete-ad <id>
  admin-delete-user <id>
  call <method> [params-json]`

// Credentials are used to sign in before every command except version.
// An empty Login runs the command anonymously.
type Credentials struct {
	Login    string
	Password string
}

type App struct {
	board       adapter.BoardClient
	credentials Credentials
	out         io.Writer

	logger *logger.Logger
}

func NewApp(board adapter.BoardClient, credentials Credentials, out io.Writer, logger *logger.Logger) *App {
	return &App{
		board:       board,
		credentials: credentials,
		out:         out,
		logger:      logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	if args[0] == "version" {
		info, err := a.board.Version(ctx)
		if err != nil {
			return err
		}
		return a.print(info)
	}

	request, err := parseCommand(args)
	if err != nil {
		return err
	}

	if a.credentials.Login != "" {
		if err = a.board.Login(ctx, a.credentials.Login, a.credentials.Password); err != nil {
			return fmt.Errorf("sign in as %s: %w", a.credentials.Login, err)
		}
		defer func() {
			if err := a.board.Logout(ctx); err != nil {
				a.logger.Warn().Err(err).Msg("logout failed")
			}
		}()
	}

	response, err := a.board.Call(ctx, request)
	if err != nil {
		return err
	}
	if err = a.print(response); err != nil {
		return err
	}
	if response.Error != "" {
		return fmt.Errorf("%w: %s", ErrCallFailed, response.Error)
	}
	return nil
}

func (a *App) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseCommand turns the command line into a facade request.
func parseCommand(args []string) (models.RPCRequest, error) {
	command, rest := args[0], args[1:]

	switch command {
	case "create":
		if len(rest) != 2 {
			return models.RPCRequest{}, fmt.Errorf("%w: create <title> <content>", ErrUsage)
		}
		return newRequest(rpc.MethodAdCreate, models.RPCParams{Title: rest[0], Content: rest[1]})
	case "edit":
		if len(rest) != 3 {
			return models.RPCRequest{}, fmt.Errorf("%w: edit <id> <title> <content>", ErrUsage)
		}
		id, err := parseID(rest[0])
		if err != nil {
			return models.RPCRequest{}, err
		}
		return newRequest(rpc.MethodAdEdit, models.RPCParams{ID: id, Title: rest[1], Content: rest[2]})
	case "delete", "admin-delete-ad", "admin-delete-user":
		if len(rest) != 1 {
			return models.RPCRequest{}, fmt.Errorf("%w: %s <id>", ErrUsage, command)
		}
		id, err := parseID(rest[0])
		if err != nil {
			return models.RPCRequest{}, err
		}
		method := map[string]string{
			"delete":            rpc.MethodAdDelete,
			"admin-delete-ad":   rpc.MethodAdminDeletePost,
			"admin-delete-user": rpc.MethodAdminDeleteUser,
		}[command]
		return newRequest(method, models.RPCParams{ID: id})
	case "call":
		if len(rest) == 0 || len(rest) > 2 {
			return models.RPCRequest{}, fmt.Errorf("%w: call <method> [params-json]", ErrUsage)
		}
		request := models.RPCRequest{Method: rest[0]}
		if len(rest) == 2 {
			if !json.Valid([]byte(rest[1])) {
				return models.RPCRequest{}, fmt.Errorf("%w: params must be a JSON object", ErrUsage)
			}
			request.Params = json.RawMessage(rest[1])
		}
		return request, nil
	default:
		return models.RPCRequest{}, fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

func newRequest(method string, params models.RPCParams) (models.RPCRequest, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return models.RPCRequest{}, err
	}
	return models.RPCRequest{Method: method, Params: raw}, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id", ErrUsage, raw)
	}
	return id, nil
}
