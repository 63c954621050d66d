// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package models

import "testing"

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	for _, c := range []Category{"", "underwater", "Academic", "ACADEMIC"} {
		if c.Valid() {
			t.Errorf("%q should be invalid", c)
		}
	}
}

func TestCategoryDisplayName(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryAcademic, "Academic Buildings"},
		{CategoryDining, "Dining & Food"},
		{CategoryResidence, "Residence Halls"},
		{CategoryRecreation, "Recreation & Sports"},
		{Category("custom"), "custom"},
	}
	for _, tt := range tests {
		if got := tt.cat.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestBoundsExtend(t *testing.T) {
	var b Bounds
	if !b.IsZero() {
		t.Fatal("zero bounds should report IsZero")
	}

	p1 := LatLng{Lat: 40.10, Lng: -88.23}
	b = b.Extend(p1)
	if b.SouthWest != p1 || b.NorthEast != p1 {
		t.Errorf("first extend = %+v, want degenerate box at %+v", b, p1)
	}

	p2 := LatLng{Lat: 40.12, Lng: -88.25}
	b = b.Extend(p2)
	if b.SouthWest != (LatLng{Lat: 40.10, Lng: -88.25}) {
		t.Errorf("south-west = %+v", b.SouthWest)
	}
	if b.NorthEast != (LatLng{Lat: 40.12, Lng: -88.23}) {
		t.Errorf("north-east = %+v", b.NorthEast)
	}

	// A point inside the box leaves it unchanged.
	inside := LatLng{Lat: 40.11, Lng: -88.24}
	if got := b.Extend(inside); got != b {
		t.Errorf("extending with interior point changed bounds: %+v", got)
	}
}

func TestBoundsCenter(t *testing.T) {
	b := Bounds{
		SouthWest: LatLng{Lat: 40.0, Lng: -89.0},
		NorthEast: LatLng{Lat: 41.0, Lng: -88.0},
	}
	want := LatLng{Lat: 40.5, Lng: -88.5}
	if got := b.Center(); got != want {
		t.Errorf("Center() = %+v, want %+v", got, want)
	}
}

func TestUserPublic(t *testing.T) {
	u := UserAccount{ID: "id-1", Name: "Asha", Email: "asha@illinois.edu", PasswordHash: []byte("hash")}
	pub := u.Public()
	if pub.ID != "id-1" || pub.Name != "Asha" || pub.Email != "asha@illinois.edu" {
		t.Errorf("Public() = %+v", pub)
	}
}
