package naming

import (
	"strings"
	"testing"
)

func TestValidateNamespaceName(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid short", value: "team-a", wantErr: false},
		{name: "valid max length", value: strings.Repeat("a", 63), wantErr: false},
		{name: "too long", value: strings.Repeat("a", 64), wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "contains uppercase", value: "Team", wantErr: true},
		{name: "contains dot", value: "team.a", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNamespaceName(tc.value)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateResourceName(t *testing.T) {
	if err := ValidateResourceName("my-app.v1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateResourceName("My_App"); err == nil {
		t.Fatalf("expected error for invalid subdomain")
	}
}

func TestValidateWireString(t *testing.T) {
	cases := []struct {
		value   string
		wantErr bool
	}{
		{value: "cluster/helm-repo-list", wantErr: false},
		{value: "SYSTEM_CHECK", wantErr: false},
		{value: "stats/podstat/all-for-controller", wantErr: false},
		{value: "", wantErr: true},
		{value: "/leading", wantErr: true},
		{value: "trailing/", wantErr: true},
		{value: "a//b", wantErr: true},
		{value: "has space", wantErr: true},
		{value: strings.Repeat("a", wireStringMaxLength+1), wantErr: true},
	}
	for _, tc := range cases {
		err := ValidateWireString(tc.value)
		if tc.wantErr && err == nil {
			t.Fatalf("%q: expected error but got nil", tc.value)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.value, err)
		}
	}
}
