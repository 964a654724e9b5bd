package app

import (
	"errors"
	"strconv"
)

// ErrForbidden indicates an authenticated caller addressing another
// account's resources.
var ErrForbidden = errors.New("forbidden: can only access your own account")

// Authorize reports whether the authenticated identity owns the account
// named by pathUserID, the {user_id} segment of a resource path. A value that
// is not an integer can never match.
func Authorize(claims *Claims, pathUserID string) error {
	if claims == nil {
		return ErrTokenInvalid
	}
	id, err := strconv.ParseInt(pathUserID, 10, 64)
	if err != nil || id != claims.UserID {
		return ErrForbidden
	}
	return nil
}
