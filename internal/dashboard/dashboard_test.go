package dashboard

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invops/invctl/pkg/apiclient"
	"github.com/invops/invctl/pkg/roles"
)

// fakeClient counts calls per resource and returns canned results.
type fakeClient struct {
	products   []apiclient.Product
	categories []apiclient.Category
	users      []apiclient.UserRecord

	productsErr   error
	categoriesErr error
	usersErr      error

	userCalls atomic.Int32
}

func (f *fakeClient) ListProducts() ([]apiclient.Product, error) {
	return f.products, f.productsErr
}

func (f *fakeClient) ListCategories() ([]apiclient.Category, error) {
	return f.categories, f.categoriesErr
}

func (f *fakeClient) ListUsers() ([]apiclient.UserRecord, error) {
	f.userCalls.Add(1)
	return f.users, f.usersErr
}

func TestCollectAdmin(t *testing.T) {
	client := &fakeClient{
		products:   make([]apiclient.Product, 3),
		categories: make([]apiclient.Category, 2),
		users:      make([]apiclient.UserRecord, 5),
	}

	stats, err := Collect(client, roles.Admin)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Products)
	assert.Equal(t, 2, stats.Categories)
	assert.Equal(t, 5, stats.Users)
	assert.Equal(t, int32(1), client.userCalls.Load())
}

func TestCollectViewerNeverRequestsUsers(t *testing.T) {
	client := &fakeClient{
		products:   make([]apiclient.Product, 1),
		categories: make([]apiclient.Category, 1),
		users:      make([]apiclient.UserRecord, 9),
	}

	stats, err := Collect(client, roles.Viewer)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Products)
	assert.Equal(t, 1, stats.Categories)
	// Fixed zero, not an awaited request.
	assert.Equal(t, 0, stats.Users)
	assert.Equal(t, int32(0), client.userCalls.Load())
}

func TestCollectProductManagerNeverRequestsUsers(t *testing.T) {
	client := &fakeClient{}
	stats, err := Collect(client, roles.ProductManager)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Users)
	assert.Equal(t, int32(0), client.userCalls.Load())
}

func TestCollectUnauthenticatedPropagates(t *testing.T) {
	authErr := &apiclient.APIError{Class: apiclient.ClassUnauthenticated, StatusCode: 401}
	client := &fakeClient{productsErr: authErr}

	stats, err := Collect(client, roles.Admin)
	assert.Nil(t, stats)
	require.Error(t, err)
	assert.True(t, apiclient.IsUnauthenticated(err))
}

func TestCollectForbiddenDegradesSingleStatistic(t *testing.T) {
	client := &fakeClient{
		products:   make([]apiclient.Product, 2),
		categories: make([]apiclient.Category, 1),
		usersErr:   &apiclient.APIError{Class: apiclient.ClassForbidden, StatusCode: 403},
	}

	stats, err := Collect(client, roles.Admin)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Products)
	assert.Equal(t, 1, stats.Categories)
	assert.Equal(t, 0, stats.Users)
	require.Len(t, stats.Warnings, 1)
	assert.Contains(t, stats.Warnings[0], "users")
}

func TestCollectTransportFailureFailsView(t *testing.T) {
	client := &fakeClient{
		categoriesErr: &apiclient.APIError{Class: apiclient.ClassTransport, Message: "connection refused"},
	}

	stats, err := Collect(client, roles.Viewer)
	assert.Nil(t, stats)
	require.Error(t, err)
}

func TestSections(t *testing.T) {
	assert.Equal(t, []string{"dashboard", "products", "categories", "users"}, Sections(roles.Admin))
	assert.Equal(t, []string{"dashboard", "products", "categories"}, Sections(roles.ProductManager))
	assert.Equal(t, []string{"dashboard", "products", "categories"}, Sections(roles.Viewer))
}
