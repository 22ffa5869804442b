package navigation

import (
	"testing"

	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name       string
		role       enums.UserRole
		path       string
		want       string
		redirected bool
	}{
		{"customer home", enums.UserRoleCustomer, "/", "/", false},
		{"customer product", enums.UserRoleCustomer, "/product/104", "/product/104", false},
		{"customer trailing slash", enums.UserRoleCustomer, "/cart/", "/cart", false},
		{"customer query", enums.UserRoleCustomer, "/orders?page=2", "/orders", false},
		{"customer vendor area", enums.UserRoleCustomer, "/vendor/products", "/", true},
		{"customer admin area", enums.UserRoleCustomer, "/admin", "/", true},
		{"empty path", enums.UserRoleCustomer, "", "/", false},
		{"product without id", enums.UserRoleCustomer, "/product/", "/", true},
		{"unknown page", enums.UserRoleAdmin, "/settings", "/", true},
		{"vendor orders", enums.UserRoleVendor, "/vendor/orders", "/vendor/orders", false},
		{"vendor admin area", enums.UserRoleVendor, "/admin/users", "/", true},
		{"admin users", enums.UserRoleAdmin, "/admin/users", "/admin/users", false},
		{"admin vendor area", enums.UserRoleAdmin, "/vendor", "/", true},
		{"admin shared", enums.UserRoleAdmin, "/cart", "/cart", false},
		{"unknown role", enums.UserRole("GUEST"), "/admin", "/", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.role, tc.path)
			if got.Path != tc.want || got.Redirected != tc.redirected {
				t.Fatalf("Resolve(%s, %q) = %+v, want {%s %v}", tc.role, tc.path, got, tc.want, tc.redirected)
			}
		})
	}
}

func TestRoutesPerRole(t *testing.T) {
	if got := len(Routes(enums.UserRoleCustomer)); got != 4 {
		t.Fatalf("expected 4 customer routes, got %d", got)
	}
	if got := len(Routes(enums.UserRoleVendor)); got != 7 {
		t.Fatalf("expected 7 vendor routes, got %d", got)
	}
	if got := len(Routes(enums.UserRoleAdmin)); got != 8 {
		t.Fatalf("expected 8 admin routes, got %d", got)
	}
}

func TestMenu(t *testing.T) {
	customer := Menu(enums.UserRoleCustomer)
	if len(customer) != 2 || customer[0].Path != "/" || customer[1].Path != "/orders" {
		t.Fatalf("unexpected customer menu %+v", customer)
	}

	vendor := Menu(enums.UserRoleVendor)
	if len(vendor) != 4 || vendor[3].Label != "Inventory" || vendor[3].Section != "Vendor Panel" {
		t.Fatalf("unexpected vendor menu %+v", vendor)
	}

	admin := Menu(enums.UserRoleAdmin)
	if len(admin) != 3 || admin[2].Path != "/admin" {
		t.Fatalf("unexpected admin menu %+v", admin)
	}

	for _, item := range append(append(customer, vendor...), admin...) {
		if Resolve(enums.UserRoleAdmin, item.Path).Redirected && Resolve(enums.UserRoleVendor, item.Path).Redirected {
			t.Fatalf("menu item %s is unreachable", item.Path)
		}
	}
}
