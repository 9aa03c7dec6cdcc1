package session

import (
	"errors"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/client"
)

// Invalidate clears the store when err is an authentication failure and
// reports whether it did so. Every fetch path routes its error through
// here so a stale token is wiped exactly once, after which the role
// router resolves to the login redirect.
func Invalidate(st *Store, err error) bool {
	if !errors.Is(err, client.ErrUnauthorized) {
		return false
	}
	_ = st.Clear()
	return true
}
