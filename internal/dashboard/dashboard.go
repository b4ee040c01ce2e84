// Package dashboard computes the aggregate view shown after login: entity
// counts fetched concurrently, with the users statistic gated on role.
package dashboard

import (
	"sync"

	"github.com/invops/invctl/pkg/apiclient"
	"github.com/invops/invctl/pkg/roles"
)

// Client is the slice of the API client the dashboard needs.
type Client interface {
	ListProducts() ([]apiclient.Product, error)
	ListCategories() ([]apiclient.Category, error)
	ListUsers() ([]apiclient.UserRecord, error)
}

// Stats holds the aggregate counts.
type Stats struct {
	Products   int      `json:"products"`
	Categories int      `json:"categories"`
	Users      int      `json:"users"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Sections returns the navigation entries available to a role. Admin-only
// entries are omitted for everyone else; this is a UX hint, not an
// authorization boundary.
func Sections(role roles.Role) []string {
	sections := []string{"dashboard", "products", "categories"}
	if roles.Allowed(roles.Admin, role) {
		sections = append(sections, "users")
	}
	return sections
}

// Collect fans out the list requests concurrently and waits for all of them
// to settle before computing counts.
//
// The users request is issued only for admin identities; for everyone else
// the statistic is a fixed zero and no request is ever attempted. A 401 in
// any leg has already cleared the session inside the client (exactly once,
// however many legs fail together) and is returned here so the command can
// route to login. A 403 degrades that single statistic to zero with a
// warning instead of failing the whole view.
func Collect(client Client, role roles.Role) (*Stats, error) {
	stats := &Stats{}

	type leg struct {
		name  string
		count *int
		fetch func() (int, error)
	}

	legs := []leg{
		{"products", &stats.Products, func() (int, error) {
			products, err := client.ListProducts()
			return len(products), err
		}},
		{"categories", &stats.Categories, func() (int, error) {
			categories, err := client.ListCategories()
			return len(categories), err
		}},
	}
	if roles.Allowed(roles.Admin, role) {
		legs = append(legs, leg{"users", &stats.Users, func() (int, error) {
			users, err := client.ListUsers()
			return len(users), err
		}})
	}

	errs := make([]error, len(legs))
	var wg sync.WaitGroup
	for i, l := range legs {
		wg.Add(1)
		go func(i int, l leg) {
			defer wg.Done()
			count, err := l.fetch()
			if err != nil {
				errs[i] = err
				return
			}
			*l.count = count
		}(i, l)
	}
	wg.Wait()

	var firstErr error
	for i, err := range errs {
		if err == nil {
			continue
		}
		switch apiclient.ClassOf(err) {
		case apiclient.ClassUnauthenticated:
			// Session already torn down by the client; report immediately.
			return nil, err
		case apiclient.ClassForbidden:
			stats.Warnings = append(stats.Warnings,
				"no permission to view "+legs[i].name)
		default:
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return stats, nil
}
