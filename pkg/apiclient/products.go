package apiclient

import "encoding/json"

// Product represents a product in the inventory.
type Product struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	SKU         string      `json:"sku"`
	Price       float64     `json:"price"`
	Stock       int         `json:"stock"`
	Category    CategoryRef `json:"category,omitempty"`
}

// CategoryRef is a weak reference to a category. The server stores the id
// and resolves the name for display; the client enforces no referential
// integrity of its own.
type CategoryRef struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON accepts both the resolved form ({"_id": ..., "name": ...})
// and a bare id string.
func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Name = ""
		return nil
	}

	var ref struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &ref); err != nil {
		return err
	}
	r.ID = ref.ID
	r.Name = ref.Name
	return nil
}

// MarshalJSON writes the resolved form.
func (r CategoryRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"_id"`
		Name string `json:"name,omitempty"`
	}{ID: r.ID, Name: r.Name})
}

// CreateProductRequest is the request to create a product. Category is the
// referenced category id; the server assigns the product id.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category,omitempty"`
}

// UpdateProductRequest is the request to update a product. Nil fields are
// omitted so the server keeps their current values.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	SKU         *string  `json:"sku,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// ListProducts returns all products. A response without a products
// collection yields an empty slice.
func (c *Client) ListProducts() ([]Product, error) {
	return listField[Product](c, "/products", "products")
}

// CreateProduct creates a new product.
func (c *Client) CreateProduct(req *CreateProductRequest) (*Product, error) {
	return createResource[Product](c, "/products", req, "product")
}

// UpdateProduct updates an existing product.
func (c *Client) UpdateProduct(id string, req *UpdateProductRequest) (*Product, error) {
	return updateResource[Product](c, resourcePath("/products/%s", id), req, "product")
}

// DeleteProduct deletes a product. Callers re-list to resync.
func (c *Client) DeleteProduct(id string) error {
	return deleteResource(c, resourcePath("/products/%s", id))
}
