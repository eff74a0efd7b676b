package middleware

import (
	"visibility-srv/config"
	"visibility-srv/pkg/log"
	"visibility-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	verifier     scope.Verifier
	cookieConfig config.CookieConfig
}

func New(l log.Logger, verifier scope.Verifier, cookieConfig config.CookieConfig) Middleware {
	return Middleware{
		l:            l,
		verifier:     verifier,
		cookieConfig: cookieConfig,
	}
}
