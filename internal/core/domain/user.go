package domain

// User is a registered account. Password holds the encoded credential as
// produced by the identity service's codec, never plaintext.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Session is the client-held identity descriptor returned by register and
// login. It is cached client-side and read by every page to gate admin-only
// actions. Nothing binds it cryptographically to the User record.
type Session struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Claim is the privilege assertion a client re-sends on mutating requests.
// Token is only populated when a token-based authorization policy is in use;
// it never travels in the JSON body.
type Claim struct {
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"-"`
}
