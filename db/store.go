// Package db keeps exported definition sets (users, virtual hosts, queues,
// exchanges, bindings, policies) as named snapshots.
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/octabyte/bm-rabbitmq-api/responses"
)

var (
	ErrSnapshotNotFound = errors.New("db: snapshot not found")
	ErrInvalidName      = errors.New("db: invalid snapshot name")
)

type Store interface {
	Save(ctx context.Context, name string, defs responses.DefinitionSet) error
	Load(ctx context.Context, name string) (responses.DefinitionSet, error)
	// List returns the stored snapshot names in ascending order.
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}

// ValidateName rejects names that cannot be used both as a file name and as
// a Redis key suffix.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\:`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
