package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "op and underlying error",
			err:  E(Op("api.SendChat"), KindNetwork, errors.New("connection refused")),
			want: "api.SendChat: connection refused",
		},
		{
			name: "op, context and underlying error",
			err:  E(Op("api.Login"), KindAuth, "bad credentials", errors.New("401")),
			want: "api.Login: bad credentials: 401",
		},
		{
			name: "context only becomes the error",
			err:  E(Op("chat.Send"), "no active session"),
			want: "chat.Send: no active session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	err := E(Op("api.Sessions"), KindNetwork, errors.New("dial tcp: timeout"))

	if !Is(err, KindNetwork) {
		t.Error("expected Is(err, KindNetwork) to be true")
	}
	if Is(err, KindAuth) {
		t.Error("expected Is(err, KindAuth) to be false")
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := E(Op("api.do"), KindAuth, errors.New("401 unauthorized"))
	wrapped := fmt.Errorf("refresh sidebar: %w", inner)

	if !Is(wrapped, KindAuth) {
		t.Error("expected kind to survive fmt.Errorf wrapping")
	}
	if GetKind(wrapped) != KindAuth {
		t.Errorf("GetKind = %v, want KindAuth", GetKind(wrapped))
	}
}

func TestGetKindUnknownForPlainError(t *testing.T) {
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Error("plain errors should report KindUnknown")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNetwork, "network error"},
		{KindAuth, "authentication failed"},
		{KindValidation, "validation failed"},
		{KindDecode, "unexpected response"},
		{KindNotFound, "not found"},
		{KindConfig, "configuration error"},
		{KindIO, "I/O error"},
		{KindTimeout, "timeout"},
		{KindUnknown, "unknown error"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
