package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ndzibs/freight-site/internal/core/domain"
	"github.com/ndzibs/freight-site/internal/core/service"
	"github.com/ndzibs/freight-site/internal/infrastructure/db/memory"
)

func fieldNames(err error) map[string]string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve.Fields))
	for _, f := range ve.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestContactHandler_Create_ReturnsNewContact(t *testing.T) {
	h := NewContactHandler(service.NewContactService(memory.NewEmpty().Contacts(), nil, zerolog.Nop()))

	c, rec := newJSONContext(http.MethodPost, "/api/contact",
		`{"firstName":"A","lastName":"B","email":"a@b.com","message":"hi"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != domain.ContactStatusNew {
		t.Fatalf("expected status new, got %v", resp["status"])
	}
	if id, _ := resp["id"].(string); id == "" {
		t.Fatalf("expected generated id")
	}
	if ts, _ := resp["createdAt"].(string); ts == "" {
		t.Fatalf("expected createdAt timestamp")
	}
	if v, present := resp["phone"]; !present || v != nil {
		t.Fatalf("expected phone to be null, got %v (present=%v)", v, present)
	}
}

func TestContactHandler_Create_ListsEveryInvalidField(t *testing.T) {
	h := NewContactHandler(service.NewContactService(memory.NewEmpty().Contacts(), nil, zerolog.Nop()))

	c, _ := newJSONContext(http.MethodPost, "/api/contact", `{"firstName":"A","email":"not-an-email"}`)
	fields := fieldNames(h.Create(c))
	for _, name := range []string{"lastName", "email", "message"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("expected %s in field errors, got %v", name, fields)
		}
	}
	if _, ok := fields["firstName"]; ok {
		t.Errorf("firstName is valid and must not be reported")
	}
}

func TestPricingHandler_Create_RateMustBeInteger(t *testing.T) {
	h := NewPricingHandler(service.NewPricingService(memory.NewEmpty().Pricing(), zerolog.Nop()))

	c, _ := newJSONContext(http.MethodPost, "/api/admin/pricing",
		`{"category":"General","description":"d","rate":"cheap","unit":"per CBM","color":"blue","icon":"box"}`)
	fields := fieldNames(h.Create(c))
	if fields["rate"] != "must be of type integer" {
		t.Fatalf("expected rate type error, got %v", fields)
	}
}

func TestPricingHandler_Create_TypeErrorListedWithMissingFields(t *testing.T) {
	h := NewPricingHandler(service.NewPricingService(memory.NewEmpty().Pricing(), zerolog.Nop()))

	c, _ := newJSONContext(http.MethodPost, "/api/admin/pricing",
		`{"description":"d","rate":"cheap","unit":"per CBM","color":"blue","icon":"box"}`)
	fields := fieldNames(h.Create(c))
	if fields["rate"] != "must be of type integer" {
		t.Fatalf("expected rate type error, got %v", fields)
	}
	if _, ok := fields["category"]; !ok {
		t.Fatalf("expected missing category to be reported too, got %v", fields)
	}
	if len(fields) != 2 {
		t.Fatalf("expected exactly rate and category, got %v", fields)
	}
}

func TestPricingHandler_Update_RateOnly(t *testing.T) {
	svc := service.NewPricingService(memory.NewEmpty().Pricing(), zerolog.Nop())
	created, err := svc.CreatePricing(context.Background(), domain.PricingInput{
		Category: "General Cargo", Description: "Everyday goods", Rate: 4500, Unit: "per CBM",
		Features: []string{"Door pickup"}, Color: "blue", Icon: "box",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := NewPricingHandler(svc)

	c, rec := newJSONContext(http.MethodPut, "/api/admin/pricing/"+created.ID, `{"rate":6000}`)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got domain.Pricing
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Rate != 6000 || got.Category != "General Cargo" || got.Unit != "per CBM" || !got.Active {
		t.Fatalf("unexpected record: %+v", got)
	}
	if len(got.Features) != 1 || got.Features[0] != "Door pickup" {
		t.Fatalf("features must be preserved, got %v", got.Features)
	}
}

func TestServiceHandler_Update_NotFound(t *testing.T) {
	h := NewServiceHandler(service.NewCatalogService(memory.NewEmpty().Services(), zerolog.Nop()))

	c, _ := newJSONContext(http.MethodPut, "/api/admin/services/missing", `{"name":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Update(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceHandler_Update_ValidatesPatch(t *testing.T) {
	h := NewServiceHandler(service.NewCatalogService(memory.NewEmpty().Services(), zerolog.Nop()))

	c, _ := newJSONContext(http.MethodPut, "/api/admin/services/any", `{"type":"rail","name":""}`)
	c.SetParamNames("id")
	c.SetParamValues("any")
	fields := fieldNames(h.Update(c))
	if _, ok := fields["type"]; !ok {
		t.Errorf("expected type error, got %v", fields)
	}
	if _, ok := fields["name"]; !ok {
		t.Errorf("expected name error, got %v", fields)
	}
}

func TestServiceHandler_Delete_Missing(t *testing.T) {
	h := NewServiceHandler(service.NewCatalogService(memory.NewEmpty().Services(), zerolog.Nop()))

	c, rec := newJSONContext(http.MethodDelete, "/api/admin/services/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Message != "Service not found" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestServiceHandler_Create_NullableFields(t *testing.T) {
	h := NewServiceHandler(service.NewCatalogService(memory.NewEmpty().Services(), zerolog.Nop()))

	c, rec := newJSONContext(http.MethodPost, "/api/admin/services",
		`{"name":"Air","type":"air","description":"Fast","features":[]}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["nextDate"] != nil {
		t.Fatalf("expected null nextDate, got %v", resp["nextDate"])
	}
	features, ok := resp["features"].([]any)
	if !ok || len(features) != 0 {
		t.Fatalf("expected empty features list, got %v", resp["features"])
	}
	if resp["active"] != true {
		t.Fatalf("expected active default true")
	}
}

func TestTestimonialHandler_Create_RatingBounds(t *testing.T) {
	h := NewTestimonialHandler(service.NewTestimonialService(memory.NewEmpty().Testimonials(), zerolog.Nop()))

	c, _ := newJSONContext(http.MethodPost, "/api/admin/testimonials",
		`{"name":"Ana","location":"Manila","content":"Great","rating":9}`)
	if _, ok := fieldNames(h.Create(c))["rating"]; !ok {
		t.Fatalf("expected rating error")
	}
}

func TestContentHandler_Update_CreatesUnknownKey(t *testing.T) {
	h := NewContentHandler(service.NewContentService(memory.NewEmpty().Content(), zerolog.Nop()))

	c, rec := newJSONContext(http.MethodPut, "/api/content/unknown-key", `{"value":"x"}`)
	c.SetParamNames("key")
	c.SetParamValues("unknown-key")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got domain.Content
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Key != "unknown-key" || got.Value != "x" || got.ID == "" {
		t.Fatalf("unexpected content: %+v", got)
	}
}

func requireHTTPError(t *testing.T, err error, code int, msg string) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code || he.Message != msg {
		t.Fatalf("expected %d %q, got %d %v", code, msg, he.Code, he.Message)
	}
}

func TestContentHandler_Update_ValueRequired(t *testing.T) {
	h := NewContentHandler(service.NewContentService(memory.NewEmpty().Content(), zerolog.Nop()))

	c, _ := newJSONContext(http.MethodPut, "/api/content/hero", `{}`)
	c.SetParamNames("key")
	c.SetParamValues("hero")
	requireHTTPError(t, h.Update(c), http.StatusBadRequest, "Value is required")
}

func TestContactHandler_UpdateStatus_StatusRequired(t *testing.T) {
	h := NewContactHandler(service.NewContactService(memory.NewEmpty().Contacts(), nil, zerolog.Nop()))

	c, _ := newJSONContext(http.MethodPut, "/api/admin/contacts/x/status", `{"status":""}`)
	c.SetParamNames("id")
	c.SetParamValues("x")
	requireHTTPError(t, h.UpdateStatus(c), http.StatusBadRequest, "Status is required")
}
