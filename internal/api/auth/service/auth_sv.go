package authService

import (
	"AutomatrixBackend/internal/api/auth"
	contextPkg "AutomatrixBackend/pkg/context"
	jwtPkg "AutomatrixBackend/pkg/jwt"
	"context"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const sessionDuration = 24 * time.Hour

func (s *authService) LoginGoogle(callback string) (*url.URL, error) {
	gConfig := s.googleProvider.GetConfig()
	URL, err := url.Parse(gConfig.Endpoint.AuthURL)
	if err != nil {
		return nil, err
	}

	// The caller-supplied target rides along in the OAuth state parameter
	// and is re-validated by SafeRedirect when the callback completes.
	state := os.Getenv("GOOGLE_STATE")
	if callback != "" {
		state = state + "|" + callback
	}

	parameters := url.Values{}
	parameters.Add("client_id", gConfig.ClientID)
	parameters.Add("scope", strings.Join(gConfig.Scopes, " "))
	parameters.Add("redirect_uri", gConfig.RedirectURL)
	parameters.Add("response_type", "code")
	parameters.Add("state", state)
	URL.RawQuery = parameters.Encode()

	return URL, nil
}

func (s *authService) AuthorizeGoogle(ctx context.Context, user auth.GoogleUser, callback string) (auth.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if _, ok := s.authorizedEmails[user.Email]; !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      user.Email,
		}).Warn("Sign-in attempt by email outside the allow-list")
		return auth.SessionResponse{}, auth.ErrEmailNotAuthorized
	}

	token, expired, err := jwtPkg.Sign(map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}, sessionDuration)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign session token")
		return auth.SessionResponse{}, auth.ErrSignToken
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"email":      user.Email,
	}).Info("Session established")

	return auth.SessionResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
		Redirect:         s.SafeRedirect(callback),
	}, nil
}

// SafeRedirect accepts a caller-supplied target only when it is
// path-relative or points at a trusted hostname; everything else silently
// falls back to the service root.
func (s *authService) SafeRedirect(target string) string {
	if target == "" {
		return "/"
	}

	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return target
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return "/"
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "/"
	}
	if _, ok := s.trustedHosts[parsed.Hostname()]; ok {
		return target
	}

	return "/"
}
