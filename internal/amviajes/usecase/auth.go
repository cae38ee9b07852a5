package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/event"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgerror"
)

type AuthInput struct {
	ClientID string
	Username string
	Password string
}

type SessionOutput struct {
	Username string
	LoggedIn bool
}

func (u *Usecase) Register(ctx context.Context, in AuthInput) (*SessionOutput, error) {
	username, err := u.sessions.Register(ctx, in.ClientID, in.Username, in.Password)
	if err != nil {
		return nil, sessionError(err)
	}

	slog.InfoContext(ctx, "user registered", "client_id", in.ClientID, "username", username)
	u.publish(ctx, event.TypeUserRegistered, in.ClientID, map[string]string{"usuario": username})

	return &SessionOutput{Username: username, LoggedIn: true}, nil
}

func (u *Usecase) Login(ctx context.Context, in AuthInput) (*SessionOutput, error) {
	username, err := u.sessions.Login(ctx, in.ClientID, in.Username, in.Password)
	if err != nil {
		return nil, sessionError(err)
	}
	return &SessionOutput{Username: username, LoggedIn: true}, nil
}

func (u *Usecase) Logout(ctx context.Context, clientID string) error {
	if err := u.sessions.Logout(ctx, clientID); err != nil {
		return sessionError(err)
	}
	return nil
}

func (u *Usecase) Session(ctx context.Context, clientID string) (*SessionOutput, error) {
	username, err := u.sessions.Current(ctx, clientID)
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}
	return &SessionOutput{Username: username, LoggedIn: username != ""}, nil
}

// requireSession returns the logged in username or an unauthorized error
// carrying msg.
func (u *Usecase) requireSession(ctx context.Context, clientID, msg string) (string, error) {
	username, err := u.sessions.Current(ctx, clientID)
	if err != nil {
		return "", pkgerror.NewServer(err)
	}
	if username == "" {
		return "", pkgerror.NewBusiness(msg, pkgerror.CodeUnauthorized).WithRedirect("/")
	}
	return username, nil
}

// publish never fails the caller; a lost event is only logged.
func (u *Usecase) publish(ctx context.Context, typ event.Type, clientID string, payload any) {
	e := event.Event{
		ID:         u.uuid.Generate(),
		Type:       typ,
		ClientID:   clientID,
		OccurredAt: u.now().UTC(),
		Payload:    payload,
	}
	if err := u.publisher.Publish(ctx, e); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "type", typ, "client_id", clientID, "error", err)
	}
}
