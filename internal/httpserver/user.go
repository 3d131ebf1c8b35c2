package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop/internal/events"
	"github.com/Skotchmaster/shop/internal/logging"
	"github.com/Skotchmaster/shop/internal/models"
	"github.com/Skotchmaster/shop/internal/service"
	"github.com/Skotchmaster/shop/internal/transport"
)

type UserHTTP struct {
	Svc    *service.UserService
	Events events.Publisher
}

func userEvent(kind string, u *models.User) map[string]any {
	return map[string]any{
		"type":     kind,
		"userID":   u.ID,
		"username": u.Username,
		"role":     u.Role,
	}
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "user.get_users").Logger()

	users, err := h.Svc.List(ctx)
	if err != nil {
		return failure(&l, "get_users_failed", err, "user not found", "cannot get users")
	}

	return c.JSON(http.StatusOK, transport.NewUserResponses(users))
}

func (h *UserHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "user.register").Logger()

	var req transport.RegisterRequest
	if err := bindBody(c, &l, "register_failed", &req); err != nil {
		return err
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		return failure(&l, "register_failed", err, "user not found", "could not register user")
	}

	publish(ctx, h.Events, events.TopicUser, user.ID, userEvent("user_registered", user))

	l.Info().Uint("user_id", user.ID).Msg("register_success")
	return c.JSON(http.StatusOK, transport.NewUserResponse(user))
}

func (h *UserHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "user.login").Logger()

	var req transport.LoginRequest
	if err := bindBody(c, &l, "login_failed", &req); err != nil {
		return err
	}

	res, err := h.Svc.Authenticate(ctx, req)
	if err != nil {
		return failure(&l, "login_failed", err, "user not found", "could not log in")
	}

	publish(ctx, h.Events, events.TopicUser, res.User.ID, userEvent("user_logged_in", res.User))

	l.Info().Uint("user_id", res.User.ID).Msg("login_success")
	return c.JSON(http.StatusOK, transport.AuthResponse{
		User:      transport.NewUserResponse(res.User),
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	})
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "user.update_user").Logger()

	id, err := parseID(c, &l, "update_user_failed")
	if err != nil {
		return err
	}

	var req transport.UserRequest
	if err := bindBody(c, &l, "update_user_failed", &req); err != nil {
		return err
	}

	user, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return failure(&l, "update_user_failed", err, "user not found", "could not update user")
	}

	publish(ctx, h.Events, events.TopicUser, user.ID, userEvent("user_updated", user))

	l.Info().Uint("user_id", user.ID).Msg("update_user_success")
	return c.JSON(http.StatusOK, transport.NewUserResponse(user))
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "user.delete_user").Logger()

	id, err := parseID(c, &l, "delete_user_failed")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return failure(&l, "delete_user_failed", err, "user not found", "could not delete user")
	}

	publish(ctx, h.Events, events.TopicUser, id, map[string]any{
		"type":   "user_deleted",
		"userID": id,
	})

	l.Info().Uint("user_id", id).Msg("delete_user_success")
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "user removed"})
}
