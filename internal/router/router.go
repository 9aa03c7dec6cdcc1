// Package router maps the session role onto a navigation destination,
// the visible tab set, and a capability descriptor. Role handling lives
// here and nowhere else; screens branch on capabilities, not on raw
// role strings.
package router

// Destination is where a resolved role lands after launch.
type Destination int

const (
	AdminHome Destination = iota
	StaffHome
	UserHome
	// UnauthenticatedRedirect sends the user to the login entry point.
	UnauthenticatedRedirect
	// UnknownRoleFallback renders a generic "contact support" screen
	// instead of crashing on an unrecognized role string.
	UnknownRoleFallback
)

func (d Destination) String() string {
	switch d {
	case AdminHome:
		return "admin home"
	case StaffHome:
		return "staff home"
	case UserHome:
		return "user home"
	case UnauthenticatedRedirect:
		return "login"
	default:
		return "contact support"
	}
}

// Resolve maps a role string to its destination. Empty means
// unauthenticated; anything outside the closed role set falls back to
// the support screen.
func Resolve(role string) Destination {
	switch role {
	case "admin", "superadmin":
		return AdminHome
	case "staff":
		return StaffHome
	case "user":
		return UserHome
	case "":
		return UnauthenticatedRedirect
	default:
		return UnknownRoleFallback
	}
}

// Tab is one top-level section of the app.
type Tab string

const (
	TabHome     Tab = "Home"
	TabDevices  Tab = "Devices"
	TabOffices  Tab = "Offices"
	TabReports  Tab = "Reports"
	TabProfile  Tab = "Profile"
	TabSettings Tab = "Settings"
)

// Tabs returns the visible tab set for a role. Staff and user share the
// same set (no Offices); only admins see office management. Unknown or
// unauthenticated roles get no tabs.
func Tabs(role string) []Tab {
	switch Resolve(role) {
	case AdminHome:
		return []Tab{TabHome, TabDevices, TabOffices, TabReports, TabProfile, TabSettings}
	case StaffHome, UserHome:
		return []Tab{TabHome, TabDevices, TabReports, TabProfile, TabSettings}
	default:
		return nil
	}
}

// Capabilities describes what the role may do. The dashboards are one
// parametrized surface keyed by this descriptor rather than per-role
// copies.
type Capabilities struct {
	ManageDevices  bool
	ManageOffices  bool
	ResolveReports bool
	ViewUsers      bool
	ViewStats      bool
}

func CapabilitiesFor(role string) Capabilities {
	switch Resolve(role) {
	case AdminHome:
		return Capabilities{
			ManageDevices:  true,
			ManageOffices:  true,
			ResolveReports: true,
			ViewUsers:      true,
			ViewStats:      true,
		}
	case StaffHome:
		return Capabilities{
			ManageDevices:  true,
			ResolveReports: true,
		}
	case UserHome:
		return Capabilities{}
	default:
		return Capabilities{}
	}
}
