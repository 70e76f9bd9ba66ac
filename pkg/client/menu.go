package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// MenuItem mirrors the server's menu item payload.
type MenuItem struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	StockStatus string    `json:"stockStatus"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// menuEnvelope is the {message, menu} wrapper returned on writes.
type menuEnvelope struct {
	Message string   `json:"message"`
	Menu    MenuItem `json:"menu"`
}

// CreateMenuItemParams carries a create request. Image and ImageName are
// required by the server.
type CreateMenuItemParams struct {
	Name        string
	Description string
	Price       string
	Stock       int
	ImageName   string
	Image       io.Reader
}

// UpdateMenuItemParams carries a partial edit; nil fields are omitted from
// the form and left unchanged by the server.
type UpdateMenuItemParams struct {
	Name        *string
	Description *string
	Price       *string
	Stock       *int
	ImageName   string
	Image       io.Reader
}

// ListMenu fetches the public menu, newest first.
func (c *Client) ListMenu(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu", "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateMenuItem creates a new item with an image upload.
func (c *Client) CreateMenuItem(ctx context.Context, p CreateMenuItemParams) (*MenuItem, error) {
	fields := map[string]string{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"stock":       strconv.Itoa(p.Stock),
	}
	body, contentType, err := multipartBody(fields, p.ImageName, p.Image)
	if err != nil {
		return nil, err
	}

	var env menuEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/menu", contentType, body, &env); err != nil {
		return nil, err
	}
	return &env.Menu, nil
}

// UpdateMenuItem edits the supplied fields of an existing item.
func (c *Client) UpdateMenuItem(ctx context.Context, id string, p UpdateMenuItemParams) (*MenuItem, error) {
	fields := map[string]string{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Stock != nil {
		fields["stock"] = strconv.Itoa(*p.Stock)
	}
	body, contentType, err := multipartBody(fields, p.ImageName, p.Image)
	if err != nil {
		return nil, err
	}

	var env menuEnvelope
	if err := c.do(ctx, http.MethodPut, "/api/menu/"+url.PathEscape(id), contentType, body, &env); err != nil {
		return nil, err
	}
	return &env.Menu, nil
}

// UpdateStock sets the stock count through the narrow PATCH endpoint.
func (c *Client) UpdateStock(ctx context.Context, id string, stock int) (*MenuItem, error) {
	path := fmt.Sprintf("/api/menu/%s/stock", url.PathEscape(id))
	req := map[string]int{"stock": stock}

	var env menuEnvelope
	if err := c.doJSON(ctx, http.MethodPatch, path, req, &env); err != nil {
		return nil, err
	}
	return &env.Menu, nil
}

// DeleteMenuItem removes an item and returns its last snapshot.
func (c *Client) DeleteMenuItem(ctx context.Context, id string) (*MenuItem, error) {
	var env menuEnvelope
	if err := c.do(ctx, http.MethodDelete, "/api/menu/"+url.PathEscape(id), "", nil, &env); err != nil {
		return nil, err
	}
	return &env.Menu, nil
}
