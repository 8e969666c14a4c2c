// Package store holds the client-side session state: the auth token, the
// logged-in user record and the advisory cart/wishlist counters. Values are
// kept as JSON under fixed keys; a missing or corrupt entry reads as absent.
package store

// Keys used by the session and the CLI. They must stay stable: the store is
// the single source of truth for whether a caller is authenticated.
const (
	KeyAuthToken     = "auth_token"
	KeyUserData      = "user_data"
	KeyCartCount     = "cart_count"
	KeyWishlistCount = "wishlist_count"
)

// Store persists JSON-serializable values under string keys. Set never
// returns an error: serialization or persistence failures are logged and the
// prior value is left untouched. Get reports false for keys that are missing
// or whose stored bytes no longer unmarshal.
type Store interface {
	Set(key string, value any)
	Get(key string, out any) bool
	Remove(key string)
	Clear()
}

// Token returns the stored auth token, or "" when anonymous.
func Token(s Store) string {
	var t string
	if !s.Get(KeyAuthToken, &t) {
		return ""
	}
	return t
}
