package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/avilov/tasklist/internal/errs"
)

// apiRequest is the envelope carried by every call to the endpoint.
type apiRequest struct {
	Kind      string          `json:"kind"` // "query" or "mutation"
	Operation string          `json:"operation"`
	Args      json.RawMessage `json:"args"`
}

type helloQueryArgs struct {
	Name     string `json:"name"`
	Greeting string `json:"greeting"`
	Token    string `json:"token"`
}

type tasksArgs struct {
	ID    *int64 `json:"id"`
	Token string `json:"token"`
}

type helloMutationArgs struct {
	Name string `json:"name"`
}

type createAccountArgs struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginArgs struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenArgs struct {
	Token string `json:"token"`
}

type addTaskArgs struct {
	Token   string `json:"token"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
	Private bool   `json:"private"`
}

type taskIDArgs struct {
	Token  string `json:"token"`
	TaskID int64  `json:"taskId"`
}

func (s *Server) handleAPI(c fiber.Ctx) error {
	var req apiRequest
	if err := c.Bind().Body(&req); err != nil {
		return fail(c, fmt.Errorf("%w: malformed request body", errs.ErrInvalidArgument))
	}
	switch req.Kind {
	case "query":
		return s.handleQuery(c, req)
	case "mutation":
		return s.handleMutation(c, req)
	}
	return fail(c, fmt.Errorf("%w: unknown kind %q", errs.ErrInvalidArgument, req.Kind))
}

func (s *Server) handleQuery(c fiber.Ctx, req apiRequest) error {
	switch req.Operation {
	case "hello":
		var args helloQueryArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return fail(c, err)
		}
		return ok(c, s.greeting(c, args))

	case "tasks":
		var args tasksArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return fail(c, err)
		}
		tasks, err := s.tasks.List(c.Context(), args.ID, args.Token)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, renderTasks(tasks))

	case "users":
		// Declared in the surface but intentionally without a resolver.
		return fail(c, fmt.Errorf("%w: users", errs.ErrNotImplemented))
	}
	return fail(c, fmt.Errorf("%w: unknown query %q", errs.ErrInvalidArgument, req.Operation))
}

func (s *Server) handleMutation(c fiber.Ctx, req apiRequest) error {
	switch req.Operation {
	case "hello":
		var args helloMutationArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return fail(c, err)
		}
		name := args.Name
		if name == "" {
			name = "world"
		}
		return ok(c, fiber.Map{"helloText": fmt.Sprintf("Hello, %s!", name)})

	case "createAccount":
		var args createAccountArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return fail(c, err)
		}
		u, err := s.auth.CreateAccount(c.Context(), args.Username, args.Password, args.Email)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.Map{"id": u.ID, "username": u.Username})

	case "loginWithPassword":
		var args loginArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return fail(c, err)
		}
		ident, token, err := s.auth.Login(c.Context(), args.Username, args.Password)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.Map{"userId": ident.UserID, "username": ident.Username, "token": token})

	case "logout":
		var args tokenArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return fail(c, err)
		}
		if err := s.auth.Logout(c.Context(), args.Token); err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.Map{"ok": "OK"})

	case "addTask":
		var args addTaskArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return fail(c, err)
		}
		id, err := s.tasks.Add(c.Context(), args.Token, args.Text, args.Checked, args.Private)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.Map{"taskId": id})

	case "deleteTask":
		var args taskIDArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return fail(c, err)
		}
		if err := s.tasks.Delete(c.Context(), args.Token, args.TaskID); err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.Map{"ok": "OK"})

	case "toggleChecked":
		var args taskIDArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return fail(c, err)
		}
		v, err := s.tasks.ToggleChecked(c.Context(), args.Token, args.TaskID)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.Map{"checked": v})

	case "togglePrivate":
		var args taskIDArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return fail(c, err)
		}
		v, err := s.tasks.TogglePrivate(c.Context(), args.Token, args.TaskID)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.Map{"private": v})
	}
	return fail(c, fmt.Errorf("%w: unknown mutation %q", errs.ErrInvalidArgument, req.Operation))
}

// greeting composes the smoke-test greeting. Token resolution soft-fails to
// anonymous; precedence is resolved-username, then explicit name, then "world".
func (s *Server) greeting(c fiber.Ctx, args helloQueryArgs) string {
	greeting := args.Greeting
	if greeting == "" {
		greeting = "Hello"
	}
	who := ""
	if args.Token != "" {
		if ident, err := s.auth.Resolve(c.Context(), args.Token); err == nil {
			who = ident.Username
		}
	}
	if who == "" {
		who = args.Name
	}
	if who == "" {
		who = "world"
	}
	return fmt.Sprintf("%s, %s! Nice query!", greeting, who)
}

func decodeArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: malformed args", errs.ErrInvalidArgument)
	}
	return nil
}

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"data": data})
}

func fail(c fiber.Ctx, err error) error {
	return c.Status(statusFromErr(err)).JSON(fiber.Map{"error": err.Error()})
}

// statusFromErr maps sentinel error kinds to HTTP status codes.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		return fiber.StatusUnauthorized
	case errors.Is(err, errs.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, errs.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, errs.ErrNotImplemented):
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}
