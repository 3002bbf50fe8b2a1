package authService

import (
	"AutomatrixBackend/internal/api/auth"
	"AutomatrixBackend/pkg/google"
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	LoginGoogle(callback string) (*url.URL, error)
	AuthorizeGoogle(ctx context.Context, user auth.GoogleUser, callback string) (auth.SessionResponse, error)
	SafeRedirect(target string) string
}

type authService struct {
	log              *logrus.Logger
	googleProvider   google.ItfGoogle
	authorizedEmails map[string]struct{}
	trustedHosts     map[string]struct{}
}

func New(log *logrus.Logger, googleProvider google.ItfGoogle) AuthService {
	return &authService{
		log:              log,
		googleProvider:   googleProvider,
		authorizedEmails: parseSet(os.Getenv("AUTHORIZED_EMAILS")),
		trustedHosts:     parseSet(os.Getenv("TRUSTED_REDIRECT_HOSTS")),
	}
}

// parseSet splits a comma-separated environment value into a set.
// Entries are matched case-sensitively and exactly.
func parseSet(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		set[entry] = struct{}{}
	}
	return set
}
