package client

import (
	"context"
	"net/url"
	"strconv"
)

// PersonService handles person CRUD operations.
type PersonService struct {
	c *Client
}

// List returns people with optional filtering and pagination.
func (s *PersonService) List(ctx context.Context, opts *PersonListOptions) ([]Person, error) {
	params := url.Values{}
	if opts != nil {
		if opts.FilterColumn != "" {
			params.Set("filter_column", opts.FilterColumn)
		}
		if opts.FilterValue != "" {
			params.Set("filter_value", opts.FilterValue)
		}
		if opts.Keyword != "" {
			params.Set("keyword", opts.Keyword)
		}
		if opts.Skip > 0 {
			params.Set("skip", strconv.Itoa(opts.Skip))
		}
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
	}
	var people []Person
	if err := s.c.get(ctx, "/people/", params, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// Get returns a single person by ID.
func (s *PersonService) Get(ctx context.Context, id int64) (*Person, error) {
	var person Person
	if err := s.c.get(ctx, "/people/"+strconv.FormatInt(id, 10), nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// Create creates a new person.
func (s *PersonService) Create(ctx context.Context, req *CreatePersonRequest) (*Person, error) {
	var person Person
	if err := s.c.post(ctx, "/people/", req, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// Update replaces an existing person's fields by ID.
func (s *PersonService) Update(ctx context.Context, id int64, req *UpdatePersonRequest) (*Person, error) {
	var person Person
	if err := s.c.put(ctx, "/people/"+strconv.FormatInt(id, 10), req, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// Delete removes a person by ID.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	// The server responds with a bare JSON confirmation string.
	var msg string
	return s.c.del(ctx, "/people/"+strconv.FormatInt(id, 10), &msg)
}
