package types

// AuthScheme prefixes the token in the Authorization header.
const AuthScheme = "Token"

// Credential is the opaque token proving an authenticated session together
// with the account it was issued to.
type Credential struct {
	Token    string   `json:"token"`
	Username Username `json:"username"`
}

// Valid reports whether the credential carries a token.
func (c Credential) Valid() bool { return c.Token != "" }

// AuthorizationHeader returns the value sent in the Authorization header.
func (c Credential) AuthorizationHeader() string { return AuthScheme + " " + c.Token }

// LoginRequest is the body of POST /accounts/login/.
type LoginRequest struct {
	Username Username `json:"username"`
	Password string   `json:"password"`
}

// LoginResponse is the success body of POST /accounts/login/.
type LoginResponse struct {
	Key string `json:"key"`
}

// SignUpRequest carries the registration fields of POST /accounts/signup/.
// Only Username and the two password fields are required by the server.
type SignUpRequest struct {
	Username    Username `json:"username"`
	Password1   string   `json:"password1"`
	Password2   string   `json:"password2"`
	Email       string   `json:"email,omitempty"`
	Nickname    string   `json:"nickname,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	BirthDate   string   `json:"birth_date,omitempty"`
	Age         int      `json:"age,omitempty"`
	Money       int64    `json:"money,omitempty"`
	Salary      int64    `json:"salary,omitempty"`
}
