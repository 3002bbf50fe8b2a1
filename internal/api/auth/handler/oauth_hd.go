package authHandler

import (
	"AutomatrixBackend/internal/api/auth"
	contextPkg "AutomatrixBackend/pkg/context"
	"AutomatrixBackend/pkg/handlerUtil"
	"AutomatrixBackend/pkg/log"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) HandleGoogleLogin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	url, err := h.authService.LoginGoogle(ctx.Query("callback"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "google_login")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Redirect(url.String(), fiber.StatusTemporaryRedirect)
	}
}

func (h *AuthHandler) CallBackFromGoogle(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	// State is "<expected>" or "<expected>|<callback target>". An empty
	// expected state fails closed rather than matching an empty parameter.
	stateParts := strings.SplitN(ctx.Query("state"), "|", 2)
	expectedState := os.Getenv("GOOGLE_STATE")
	if expectedState == "" || stateParts[0] != expectedState {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
		}).Warn("Invalid state parameter")
		return ctx.Redirect("/", fiber.StatusTemporaryRedirect)
	}

	var callback string
	if len(stateParts) == 2 {
		callback = stateParts[1]
	}

	code := ctx.Query("code")
	if code == "" {
		reason := ctx.Query("error_reason")
		if reason == "user_denied" {
			h.log.WithFields(log.Fields{
				"request_id": requestID,
				"reason":     reason,
				"path":       ctx.Path(),
			}).Info("User denied access")
			return errHandler.HandleUnauthorized(ctx, requestID, "Access denied by user")
		}

		return errHandler.Handle(ctx, requestID, auth.ErrNoAuthorizationCode, ctx.Path(), "google_callback")
	}

	response, err := h.googleProvider.GetUserExchangeToken(c, code)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "exchange_token")
	}

	var userInfo auth.GoogleUser
	if err := json.Unmarshal(response, &userInfo); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "unmarshal_user_info")
	}

	session, err := h.authService.AuthorizeGoogle(c, userInfo, callback)
	if err != nil {
		if errors.Is(err, auth.ErrEmailNotAuthorized) {
			return ctx.Redirect(accessDeniedURL(), fiber.StatusTemporaryRedirect)
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "authorize_google")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, session)
	}
}

func (h *AuthHandler) HandleLogout(ctx *fiber.Ctx) error {
	target := h.authService.SafeRedirect(ctx.Query("callback"))
	return ctx.Redirect(target, fiber.StatusSeeOther)
}

func accessDeniedURL() string {
	if u := os.Getenv("AUTH_ERROR_URL"); u != "" {
		return u
	}
	return "/auth/error?error=AccessDenied"
}
