package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swiftmarket-backend/pkg/errors"
)

type quantityPayload struct {
	Quantity *int   `json:"quantity" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=CUSTOMER VENDOR ADMIN"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"quantity": 0}`))
	var payload quantityPayload
	if err := DecodeJSONBody(req, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Quantity == nil || *payload.Quantity != 0 {
		t.Fatalf("expected explicit zero quantity, got %v", payload.Quantity)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"quantity": 1, "extra": true}`))
	var payload quantityPayload
	err := DecodeJSONBody(req, &payload)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"role": "ROOT"}`))
	var payload quantityPayload
	err := DecodeJSONBody(req, &payload)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["quantity"] != "is required" {
		t.Fatalf("unexpected quantity message %q", details["quantity"])
	}
	if !strings.HasPrefix(details["role"], "must be one of") {
		t.Fatalf("unexpected role message %q", details["role"])
	}
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=500", nil)
	if _, err := ParseQueryInt(req, "limit", 10, 1, 100); err == nil {
		t.Fatalf("expected range error")
	}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	if got, err := ParseQueryInt(req, "limit", 10, 1, 100); err != nil || got != 10 {
		t.Fatalf("expected default 10, got %d (%v)", got, err)
	}
}

func TestParseQueryEnum(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?sort=price_desc", nil)
	mode, err := ParseQueryEnum(req, "sort", enums.ParseSortMode)
	if err != nil || mode != enums.SortModePriceDesc {
		t.Fatalf("expected price_desc, got %s (%v)", mode, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	if mode, _ := ParseQueryEnum(req, "sort", enums.ParseSortMode); mode != enums.SortModeFeatured {
		t.Fatalf("expected featured default, got %s", mode)
	}

	req = httptest.NewRequest(http.MethodGet, "/?sort=cheapest", nil)
	if _, err := ParseQueryEnum(req, "sort", enums.ParseSortMode); err == nil {
		t.Fatalf("expected error for unknown sort")
	}
}

func TestSanitizeString(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{in: "  hello world  ", max: 5, want: "hello"},
		{in: "desk \t  lamp", max: 0, want: "desk lamp"},
		{in: "café au lait", max: 4, want: "café"},
		{in: "ab cd", max: 3, want: "ab"},
	}
	for _, tc := range cases {
		if got := SanitizeString(tc.in, tc.max); got != tc.want {
			t.Fatalf("SanitizeString(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

type rolePayload struct {
	Role     string `json:"role" validate:"required,user_role"`
	Category string `json:"category" validate:"omitempty,product_category"`
}

func TestDecodeJSONBodyCustomTags(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"role":"VENDOR","category":"Office"}`))
	var payload rolePayload
	if err := DecodeJSONBody(req, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"role":"ROOT","category":"Crypto"}`))
	err := DecodeJSONBody(req, &payload)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected validation error, got %v", err)
	}
	details := typed.Details().(map[string]string)
	if details["role"] != "must be one of: CUSTOMER VENDOR ADMIN" {
		t.Fatalf("unexpected role message %q", details["role"])
	}
	if !strings.Contains(details["category"], "Office") {
		t.Fatalf("unexpected category message %q", details["category"])
	}
}

func TestDecodeJSONBodyRejectsEmptyAndTrailing(t *testing.T) {
	for _, body := range []string{"", `{"quantity":1} {"quantity":2}`} {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
		var payload quantityPayload
		err := DecodeJSONBody(req, &payload)
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("body %q: expected validation error, got %v", body, err)
		}
	}
}

func TestDecodeJSONBodyRejectsOversizedBody(t *testing.T) {
	body := `{"role":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	var payload rolePayload
	err := DecodeJSONBody(req, &payload)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != "request body too large" {
		t.Fatalf("expected body too large, got %v", err)
	}
}
