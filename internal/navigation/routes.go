package navigation

import (
	"strings"

	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
)

// Home is where unreachable paths are redirected.
const Home = "/"

// MenuItem is one sidebar link.
type MenuItem struct {
	Path    string `json:"path"`
	Label   string `json:"label"`
	Section string `json:"section,omitempty"`
}

// Resolution is the outcome of resolving a requested path for a role.
type Resolution struct {
	Path       string `json:"path"`
	Redirected bool   `json:"redirected"`
}

type route struct {
	pattern string
	menu    *MenuItem
}

var sharedRoutes = []route{
	{pattern: "/", menu: &MenuItem{Path: "/", Label: "Home Feed"}},
	{pattern: "/cart"},
	{pattern: "/product/:id"},
	{pattern: "/orders", menu: &MenuItem{Path: "/orders", Label: "My Orders"}},
}

var roleRoutes = map[enums.UserRole][]route{
	enums.UserRoleCustomer: {},
	enums.UserRoleVendor: {
		{pattern: "/vendor", menu: &MenuItem{Path: "/vendor", Label: "Analytics", Section: "Vendor Panel"}},
		{pattern: "/vendor/products", menu: &MenuItem{Path: "/vendor/products", Label: "Inventory", Section: "Vendor Panel"}},
		{pattern: "/vendor/orders"},
	},
	enums.UserRoleAdmin: {
		{pattern: "/admin", menu: &MenuItem{Path: "/admin", Label: "Command Center", Section: "Platform Admin"}},
		{pattern: "/admin/vendors"},
		{pattern: "/admin/products"},
		{pattern: "/admin/users"},
	},
}

// Routes lists the route patterns reachable by role. Unknown roles get the shared routes.
func Routes(role enums.UserRole) []string {
	table := routesFor(role)
	out := make([]string, len(table))
	for i, r := range table {
		out[i] = r.pattern
	}
	return out
}

// Allowed reports whether role can reach path.
func Allowed(role enums.UserRole, path string) bool {
	clean := normalize(path)
	for _, r := range routesFor(role) {
		if match(r.pattern, clean) {
			return true
		}
	}
	return false
}

// Resolve returns the path the role lands on: the requested path when reachable,
// otherwise Home.
func Resolve(role enums.UserRole, path string) Resolution {
	clean := normalize(path)
	if Allowed(role, clean) {
		return Resolution{Path: clean}
	}
	return Resolution{Path: Home, Redirected: true}
}

// Menu lists the sidebar links for role.
func Menu(role enums.UserRole) []MenuItem {
	out := make([]MenuItem, 0)
	for _, r := range routesFor(role) {
		if r.menu != nil {
			out = append(out, *r.menu)
		}
	}
	return out
}

func routesFor(role enums.UserRole) []route {
	extra := roleRoutes[role]
	out := make([]route, 0, len(sharedRoutes)+len(extra))
	out = append(out, sharedRoutes...)
	return append(out, extra...)
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Home
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return Home
		}
	}
	return path
}

func match(pattern, path string) bool {
	if pattern == path {
		return true
	}
	pp := strings.Split(pattern, "/")
	sp := strings.Split(path, "/")
	if len(pp) != len(sp) {
		return false
	}
	for i := range pp {
		if strings.HasPrefix(pp[i], ":") {
			if sp[i] == "" {
				return false
			}
			continue
		}
		if pp[i] != sp[i] {
			return false
		}
	}
	return true
}
