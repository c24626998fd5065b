package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/popx/internal/auth"
	"github.com/loganlanou/popx/internal/avatar"
)

const maxAvatarSize = 512

// HandleAvatar renders the signed-in user's initials avatar
func HandleAvatar(c echo.Context) error {
	user, ok := auth.GetUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no avatar")
	}

	size := avatar.DefaultSize
	if raw := c.QueryParam("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxAvatarSize {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid size")
		}
		size = n
	}

	var buf bytes.Buffer
	if err := avatar.Generate(&buf, user.Name, user.ID, size); err != nil {
		slog.Error("failed to generate avatar", "user_id", user.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate avatar")
	}

	c.Response().Header().Set("Cache-Control", "private, no-cache")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
