package apiclient

// Category represents a product category.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateCategoryRequest is the request to create a category.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateCategoryRequest is the request to update a category. Nil fields are
// omitted so the server keeps their current values.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListCategories returns all categories. A response without a categories
// collection yields an empty slice.
func (c *Client) ListCategories() ([]Category, error) {
	return listField[Category](c, "/categories", "categories")
}

// CreateCategory creates a new category.
func (c *Client) CreateCategory(req *CreateCategoryRequest) (*Category, error) {
	return createResource[Category](c, "/categories", req, "category")
}

// UpdateCategory updates an existing category.
func (c *Client) UpdateCategory(id string, req *UpdateCategoryRequest) (*Category, error) {
	return updateResource[Category](c, resourcePath("/categories/%s", id), req, "category")
}

// DeleteCategory deletes a category. Callers re-list to resync.
func (c *Client) DeleteCategory(id string) error {
	return deleteResource(c, resourcePath("/categories/%s", id))
}
