package commands

import (
	"context"
	"errors"
)

var errNoSession = errors.New("perch: command run without the root command")

func withSession(ctx context.Context, s *session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionKey{}, s)
}

func sessionFrom(ctx context.Context) (*session, error) {
	if ctx == nil {
		return nil, errNoSession
	}
	s, ok := ctx.Value(sessionKey{}).(*session)
	if !ok {
		return nil, errNoSession
	}
	return s, nil
}
