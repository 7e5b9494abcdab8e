package idsdk

// RegisterRequest is the JSON body for POST /v1/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the registration success payload. Under the minimal
// response profile only ID is populated.
type RegisterResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Token string `json:"token,omitempty"`
}

// LoginRequest is the JSON body for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the rich-profile login payload. The minimal profile
// returns the token bare in a text/plain body instead.
type LoginResponse struct {
	Token string `json:"token"`
}

// VerifyResponse is the token verification success payload.
type VerifyResponse struct {
	Valid bool   `json:"valid"`
	ID    string `json:"id"`
	Name  string `json:"name"`
}

// AccountResponse is the payload of GET /v1/accounts/me.
type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrorResponse is the error envelope every endpoint shares.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthResponse is the payload of the livez/readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
