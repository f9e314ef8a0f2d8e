package middleware

import (
	"clickup-task-bot/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
