package auth

// UserClaims is the unverified identity a request carries. It is only a
// claim: the verified admin decision always comes from the privileged
// verification service, never from anything stored here.
type UserClaims interface {
	UserID() string
	Email() string
	TokenID() string
	Source() string
}

// JWTClaims are claims parsed from a first-party session token.
type JWTClaims struct {
	UserUUID   string
	EmailValue string
	JTI        string
}

func (c *JWTClaims) UserID() string  { return c.UserUUID }
func (c *JWTClaims) Email() string   { return c.EmailValue }
func (c *JWTClaims) TokenID() string { return c.JTI }
func (c *JWTClaims) Source() string  { return "JWT" }
