package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sweetcrumb/menu-system/internal/core/domain"
	"github.com/sweetcrumb/menu-system/internal/core/ports"
)

type stubMenuService struct {
	createInput *ports.CreateMenuItemInput
	updateInput *ports.UpdateMenuItemInput
	updateID    string
	stockID     string
	stockValue  int

	item  *domain.MenuItem
	items []*domain.MenuItem
	err   error
}

func (s *stubMenuService) Create(_ context.Context, input ports.CreateMenuItemInput) (*domain.MenuItem, error) {
	s.createInput = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubMenuService) List(context.Context) ([]*domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *stubMenuService) Update(_ context.Context, id string, input ports.UpdateMenuItemInput) (*domain.MenuItem, error) {
	s.updateID = id
	s.updateInput = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubMenuService) UpdateStock(_ context.Context, id string, stock int) (*domain.MenuItem, error) {
	s.stockID = id
	s.stockValue = stock
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubMenuService) Delete(_ context.Context, id string) (*domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func sampleItem() *domain.MenuItem {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.MenuItem{
		ID:          "item_1",
		Name:        "Cheesecake",
		Description: "Rich and creamy",
		Price:       "250",
		Image:       "https://images.example.com/menu_items/cheesecake.png",
		Stock:       5,
		StockStatus: domain.AvailabilityAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// multipartForm builds a multipart body from fields plus an optional file
// part named "image".
func multipartForm(t *testing.T, fields map[string]string, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("image", filename)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := io.Copy(fw, strings.NewReader("fake image bytes")); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func newMenuContext(t *testing.T, method, target string, body io.Reader, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMenuHandler_Create(t *testing.T) {
	svc := &stubMenuService{item: sampleItem()}
	h := NewMenuHandler(svc)

	body, contentType := multipartForm(t, map[string]string{
		"name":        "Cheesecake",
		"description": "Rich and creamy",
		"price":       "250",
		"stock":       "5",
	}, "cheesecake.png")
	c, rec := newMenuContext(t, http.MethodPost, "/api/menu", body, contentType)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Message string          `json:"message"`
		Menu    json.RawMessage `json:"menu"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Menu item created successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if len(resp.Menu) == 0 {
		t.Fatalf("expected menu object in envelope")
	}

	if svc.createInput == nil {
		t.Fatalf("service not called")
	}
	if svc.createInput.Stock != 5 {
		t.Fatalf("expected stock 5, got %d", svc.createInput.Stock)
	}
	if svc.createInput.Image == nil || svc.createInput.Image.Filename != "cheesecake.png" {
		t.Fatalf("image not forwarded: %+v", svc.createInput.Image)
	}
}

func TestMenuHandler_Create_MissingImage(t *testing.T) {
	h := NewMenuHandler(&stubMenuService{})

	body, contentType := multipartForm(t, map[string]string{
		"name":        "Cheesecake",
		"description": "Rich and creamy",
		"price":       "250",
	}, "")
	c, _ := newMenuContext(t, http.MethodPost, "/api/menu", body, contentType)

	if err := h.Create(c); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestMenuHandler_Create_InvalidStock(t *testing.T) {
	h := NewMenuHandler(&stubMenuService{})

	body, contentType := multipartForm(t, map[string]string{
		"name":  "Cheesecake",
		"stock": "-3",
	}, "cheesecake.png")
	c, _ := newMenuContext(t, http.MethodPost, "/api/menu", body, contentType)

	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestMenuHandler_List(t *testing.T) {
	svc := &stubMenuService{items: []*domain.MenuItem{sampleItem()}}
	h := NewMenuHandler(svc)

	c, rec := newMenuContext(t, http.MethodGet, "/api/menu", nil, "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// The list endpoint returns the bare array, no envelope.
	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("expected a JSON array: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0]["_id"] != "item_1" {
		t.Fatalf("unexpected item: %+v", items[0])
	}
	if items[0]["stockStatus"] != "Available" {
		t.Fatalf("expected stockStatus Available, got %v", items[0]["stockStatus"])
	}
}

func TestMenuHandler_List_Empty(t *testing.T) {
	h := NewMenuHandler(&stubMenuService{items: []*domain.MenuItem{}})

	c, rec := newMenuContext(t, http.MethodGet, "/api/menu", nil, "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestMenuHandler_Update_PartialFields(t *testing.T) {
	svc := &stubMenuService{item: sampleItem()}
	h := NewMenuHandler(svc)

	body, contentType := multipartForm(t, map[string]string{"price": "300"}, "")
	c, rec := newMenuContext(t, http.MethodPut, "/api/menu/item_1", body, contentType)
	c.SetParamNames("id")
	c.SetParamValues("item_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.updateID != "item_1" {
		t.Fatalf("wrong id forwarded: %s", svc.updateID)
	}
	if svc.updateInput.Price == nil || *svc.updateInput.Price != "300" {
		t.Fatalf("price not forwarded: %+v", svc.updateInput)
	}
	if svc.updateInput.Name != nil || svc.updateInput.Stock != nil || svc.updateInput.Image != nil {
		t.Fatalf("untouched fields must stay nil: %+v", svc.updateInput)
	}
}

func TestMenuHandler_Update_NotFound(t *testing.T) {
	h := NewMenuHandler(&stubMenuService{err: domain.ErrMenuItemNotFound})

	body, contentType := multipartForm(t, map[string]string{"price": "300"}, "")
	c, _ := newMenuContext(t, http.MethodPut, "/api/menu/missing", body, contentType)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Update(c); !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestMenuHandler_UpdateStock(t *testing.T) {
	item := sampleItem()
	item.Stock = 0
	item.StockStatus = domain.AvailabilitySoldOut
	svc := &stubMenuService{item: item}
	h := NewMenuHandler(svc)

	c, rec := newMenuContext(t, http.MethodPatch, "/api/menu/item_1/stock",
		strings.NewReader(`{"stock": 0}`), echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("item_1")

	if err := h.UpdateStock(c); err != nil {
		t.Fatalf("UpdateStock returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// An explicit zero is a valid value, not a missing field.
	if svc.stockValue != 0 || svc.stockID != "item_1" {
		t.Fatalf("unexpected call: id=%s stock=%d", svc.stockID, svc.stockValue)
	}
	if !strings.Contains(rec.Body.String(), "Stock updated successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestMenuHandler_UpdateStock_MissingValue(t *testing.T) {
	h := NewMenuHandler(&stubMenuService{})

	c, _ := newMenuContext(t, http.MethodPatch, "/api/menu/item_1/stock",
		strings.NewReader(`{}`), echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("item_1")

	err := h.UpdateStock(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if httpErr.Message != "Stock value is required" {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}

func TestMenuHandler_UpdateStock_Negative(t *testing.T) {
	h := NewMenuHandler(&stubMenuService{})

	c, _ := newMenuContext(t, http.MethodPatch, "/api/menu/item_1/stock",
		strings.NewReader(`{"stock": -1}`), echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("item_1")

	err := h.UpdateStock(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestMenuHandler_Delete(t *testing.T) {
	svc := &stubMenuService{item: sampleItem()}
	h := NewMenuHandler(svc)

	c, rec := newMenuContext(t, http.MethodDelete, "/api/menu/item_1", nil, "")
	c.SetParamNames("id")
	c.SetParamValues("item_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Menu item deleted successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	// The deleted snapshot rides along in the envelope.
	if !strings.Contains(rec.Body.String(), `"_id":"item_1"`) {
		t.Fatalf("expected deleted item in body: %s", rec.Body.String())
	}
}

func TestMenuHandler_Delete_NotFound(t *testing.T) {
	h := NewMenuHandler(&stubMenuService{err: domain.ErrMenuItemNotFound})

	c, _ := newMenuContext(t, http.MethodDelete, "/api/menu/missing", nil, "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}
