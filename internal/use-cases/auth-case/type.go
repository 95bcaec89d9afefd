package auth_case

// SessionTracker is the per-session record stored in Redis under
// "session:{jti}". The authentication middleware requires it to exist, so
// deleting the key is an effective server-side logout.
type SessionTracker struct {
	JTI       string `json:"jti"`
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	LoginAt   string `json:"login_at"`
}
