// internal/services/errors.go
package services

import "github.com/inventra/inventory-backend/internal/i18n"

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindConflict
	KindUnauthorized
	KindForbidden
)

// Error is a domain failure that is safe to show to the client. Key is an
// i18n message key.
type Error struct {
	Kind ErrorKind
	Key  string
}

func (e *Error) Error() string {
	return i18n.T(i18n.DefaultLanguage, e.Key)
}

var (
	ErrProductNotFound     = &Error{Kind: KindNotFound, Key: i18n.KeyProductNotFound}
	ErrCategoryNotFound    = &Error{Kind: KindNotFound, Key: i18n.KeyCategoryNotFound}
	ErrUnknownCategory     = &Error{Kind: KindConflict, Key: i18n.KeyCategoryNotFound}
	ErrCategoryNameTaken   = &Error{Kind: KindConflict, Key: i18n.KeyCategoryNameTaken}
	ErrCategoryHasProducts = &Error{Kind: KindConflict, Key: i18n.KeyCategoryHasProducts}
	ErrUnauthenticated     = &Error{Kind: KindUnauthorized, Key: i18n.KeyAuthRequired}
	ErrInvalidCredentials  = &Error{Kind: KindUnauthorized, Key: i18n.KeyAuthInvalidCredentials}
	ErrForbidden           = &Error{Kind: KindForbidden, Key: i18n.KeyAccessDenied}
	ErrLoginTaken          = &Error{Kind: KindConflict, Key: i18n.KeyUserLoginTaken}
	ErrInvalidRole         = &Error{Kind: KindConflict, Key: i18n.KeyUserInvalidRole}
)
