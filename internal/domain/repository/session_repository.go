// Package repository defines the persistence ports of the domain.
package repository

import (
	"context"
	"errors"

	"lookchat/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session exists for the given ID.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores widget sessions for the lifetime of the process.
// Persistence across restarts is explicitly out of scope.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.ChatSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
