package apiclient

// UserRecord represents a user as returned by the users resource. User
// mutations are admin operations server-side; the client attempts them for
// anyone and lets the server answer with Forbidden.
type UserRecord struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateUserRequest is the request to update a user. The body may be
// partial, e.g. only {"role": ...}; nil fields are omitted.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// ListUsers returns all users. A response without a users collection yields
// an empty slice.
func (c *Client) ListUsers() ([]UserRecord, error) {
	return listField[UserRecord](c, "/users", "users")
}

// UpdateUser updates an existing user.
func (c *Client) UpdateUser(id string, req *UpdateUserRequest) (*UserRecord, error) {
	return updateResource[UserRecord](c, resourcePath("/users/%s", id), req, "user")
}

// DeleteUser deletes a user. Callers re-list to resync.
func (c *Client) DeleteUser(id string) error {
	return deleteResource(c, resourcePath("/users/%s", id))
}
