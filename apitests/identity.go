package apitests

// Identity is the test user that the authentication check provisions and logs
// in as. Signup with these credentials is expected to fail on every run after
// the first, which the check tolerates; they exist so that login has a known
// account to authenticate.
type Identity struct {
	Email    string `json:"email" yaml:"email"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

func DefaultIdentity() Identity {
	return Identity{
		Email:    "testuser@example.com",
		Username: "testuser",
		Password: "testpassword123",
	}
}
