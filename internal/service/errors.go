package service

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a service failure. The HTTP layer maps it to a status.
type Kind string

const (
	KindNetwork    Kind = "network"
	KindBackend    Kind = "backend"
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindInternal   Kind = "internal"
)

// NetworkMessage replaces the text of every connectivity failure.
const NetworkMessage = "Cannot connect to database. The backend may be paused or unreachable. Please check the database status."

// Error is returned by every service method. Message is safe to show to users.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	// Code is the SQLSTATE for backend errors.
	Code string
	Err  error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

func notFound(op, msg string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: msg, Err: sql.ErrNoRows}
}

func invalid(op, msg string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: msg}
}

// classify turns a repository or storage error into an *Error. fallback is
// the text used when the cause is neither a connectivity nor a database error.
func classify(op, fallback string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return se
	}

	if isNetworkError(err) {
		return &Error{Kind: KindNetwork, Op: op, Message: NetworkMessage, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &Error{Kind: KindBackend, Op: op, Message: pgErr.Message, Code: pgErr.Code, Err: err}
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &Error{Kind: KindNotFound, Op: op, Message: fallback, Err: err}
	}

	return &Error{Kind: KindInternal, Op: op, Message: fallback, Err: err}
}

var networkPatterns = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"failed to connect",
	"i/o timeout",
	"network is unreachable",
	"broken pipe",
	"server closed the connection",
}

func isNetworkError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, p := range networkPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
