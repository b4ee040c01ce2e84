package apiclient

import "encoding/json"

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the profile snapshot returned by the auth endpoints.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UnmarshalJSON accepts both "id" and Mongo-style "_id".
func (u *AuthUser) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      string `json:"id"`
		MongoID string `json:"_id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Role    string `json:"role"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.ID = raw.ID
	if u.ID == "" {
		u.ID = raw.MongoID
	}
	u.Name = raw.Name
	u.Email = raw.Email
	u.Role = raw.Role
	return nil
}

// LoginResponse is the response from the login endpoint: the opaque bearer
// credential plus the identity snapshot stored alongside it.
type LoginResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// RegisterRequest is the request to register a new user (admin operation
// server-side).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Login authenticates with the server. The call itself is sent
// unauthenticated.
func (c *Client) Login(email, password string) (*LoginResponse, error) {
	req := LoginRequest{Email: email, Password: password}

	var resp LoginResponse
	if err := c.post("/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new user account.
func (c *Client) Register(req *RegisterRequest) (*UserRecord, error) {
	return createResource[UserRecord](c, "/auth/register", req, "user")
}

// Profile returns the authenticated user's profile from the server.
func (c *Client) Profile() (*AuthUser, error) {
	var raw json.RawMessage
	if err := c.get("/auth/profile", &raw); err != nil {
		return nil, err
	}
	return decodeEntity[AuthUser](raw, "user")
}
