package auth

import "github.com/incidentops/incident-service/internal/domain"

// NavEntry is either a leaf (Path set) or a branch (Children set).
type NavEntry struct {
	Label    string     `json:"label"`
	Icon     string     `json:"icon,omitempty"`
	Path     string     `json:"path,omitempty"`
	Children []NavEntry `json:"children,omitempty"`
}

// NavigationFor returns the ordered sidebar entries for a role. The lists
// are fixed; unrecognized roles get the USER navigation.
func NavigationFor(role domain.Role) []NavEntry {
	switch role {
	case domain.RoleAdmin:
		return []NavEntry{
			{Label: "menuDashboard", Icon: "dashboard", Path: "/dashboard"},
			{Label: "menuGestionIncident", Icon: "tools", Children: []NavEntry{
				{Label: "listTitle", Path: "/liste-incidents"},
				{Label: "Dashboard", Path: "/incident-dashboard"},
			}},
			{Label: "menuGestionHabilitation", Icon: "users", Children: []NavEntry{
				{Label: "Role", Path: "/role-management"},
				{Label: "Permissions", Path: "/permissions"},
			}},
			{Label: "menuAnnuaires", Icon: "address-book", Children: []NavEntry{
				{Label: "Directories", Path: "/directories"},
			}},
		}
	case domain.RoleTechnician:
		return []NavEntry{
			{Label: "menuDashboard", Icon: "dashboard", Path: "/dashboard"},
			{Label: "menuGestionIncident", Icon: "tools", Children: []NavEntry{
				{Label: "listTitle", Path: "/liste-incidents"},
				{Label: "Dashboard", Path: "/incident-dashboard"},
			}},
			{Label: "menuAnnuaires", Icon: "address-book", Children: []NavEntry{
				{Label: "Directories", Path: "/directories"},
			}},
		}
	case domain.RoleUser:
		return []NavEntry{
			{Label: "menuDashboard", Icon: "dashboard", Path: "/dashboard"},
			{Label: "menuGestionIncident", Icon: "tools", Path: "/liste-incidents"},
			{Label: "menuAnnuaires", Icon: "address-book", Children: []NavEntry{}},
		}
	default:
		return NavigationFor(domain.RoleUser)
	}
}
