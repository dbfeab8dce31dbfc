// Package store holds the multimedia catalog backends.
package store

import (
	"errors"
	"fmt"
	"io"

	"github.com/jpp0ca/storybook-media/internal/ports"
)

// ErrDatabase wraps every error coming from a SQL backend.
var ErrDatabase = errors.New("multimedia database error")

func dbErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDatabase, op, err)
}

// Open returns the catalog backend for driver ("memory", "sqlite" or
// "postgres"). The returned closer releases the backend's resources.
func Open(driver, dsn string) (ports.MultimediaStore, io.Closer, error) {
	switch driver {
	case "memory", "":
		return NewMemory(), nopCloser{}, nil
	case "sqlite", "postgres":
		s, err := OpenSQL(driver, dsn)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver: %s", driver)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
