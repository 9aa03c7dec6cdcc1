package router

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	cases := map[string]Destination{
		"admin":      AdminHome,
		"superadmin": AdminHome,
		"staff":      StaffHome,
		"user":       UserHome,
		"":           UnauthenticatedRedirect,
		"intern":     UnknownRoleFallback,
		"ADMIN":      UnknownRoleFallback, // role strings are exact
	}
	for role, want := range cases {
		if got := Resolve(role); got != want {
			t.Fatalf("Resolve(%q) = %v, want %v", role, got, want)
		}
	}
}

func TestStaffTabsExcludeOffices(t *testing.T) {
	want := []Tab{TabHome, TabDevices, TabReports, TabProfile, TabSettings}
	if got := Tabs("staff"); !reflect.DeepEqual(got, want) {
		t.Fatalf("staff tabs = %v, want %v", got, want)
	}
	// User parity with staff is intentional in this build.
	if got := Tabs("user"); !reflect.DeepEqual(got, want) {
		t.Fatalf("user tabs = %v, want %v", got, want)
	}
}

func TestAdminTabsIncludeOffices(t *testing.T) {
	got := Tabs("admin")
	found := false
	for _, tab := range got {
		if tab == TabOffices {
			found = true
		}
	}
	if !found {
		t.Fatalf("admin tabs missing Offices: %v", got)
	}
	if !reflect.DeepEqual(got, Tabs("superadmin")) {
		t.Fatalf("superadmin tabs differ from admin")
	}
}

func TestNoTabsWithoutRole(t *testing.T) {
	if tabs := Tabs(""); tabs != nil {
		t.Fatalf("unauthenticated role must yield no tabs, got %v", tabs)
	}
	if tabs := Tabs("banana"); tabs != nil {
		t.Fatalf("unknown role must yield no tabs, got %v", tabs)
	}
}

func TestCapabilities(t *testing.T) {
	admin := CapabilitiesFor("admin")
	if !admin.ManageOffices || !admin.ViewStats || !admin.ViewUsers {
		t.Fatalf("admin capabilities too narrow: %+v", admin)
	}

	staff := CapabilitiesFor("staff")
	if staff.ManageOffices || staff.ViewUsers {
		t.Fatalf("staff must not manage offices or view users: %+v", staff)
	}
	if !staff.ResolveReports || !staff.ManageDevices {
		t.Fatalf("staff must resolve reports and manage devices: %+v", staff)
	}

	if CapabilitiesFor("user") != (Capabilities{}) {
		t.Fatalf("plain user has no elevated capabilities")
	}
	if CapabilitiesFor("mystery") != (Capabilities{}) {
		t.Fatalf("unknown role has no capabilities")
	}
}
