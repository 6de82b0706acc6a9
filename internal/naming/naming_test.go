package naming

import "testing"

func TestPatternIdentifier(t *testing.T) {
	cases := map[string]string{
		"cluster/helm-repo-list":           "CLUSTER_HELM_REPO_LIST",
		"SYSTEM_CHECK":                     "SYSTEM_CHECK",
		"ClusterStatus":                    "CLUSTERSTATUS",
		"attach/labeled_network_policy":    "ATTACH_LABELED_NETWORK_POLICY",
		"stats/podstat/all-for-controller": "STATS_PODSTAT_ALL_FOR_CONTROLLER",
	}
	for in, want := range cases {
		if got := PatternIdentifier(in); got != want {
			t.Fatalf("PatternIdentifier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStructRefIdentifier(t *testing.T) {
	got := StructRefIdentifier("GET_USER_RESPONSE", "k8s.io/api/core/v1.Pod")
	want := "GET_USER_RESPONSE__K8S_IO_API_CORE_V1_POD"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	got = StructRefIdentifier("X", "pkg.List[*pkg.Item]")
	if got != "X__PKG_LISTPKG_ITEM" {
		t.Fatalf("unexpected generic identifier %q", got)
	}
}

func TestFingerprintStable(t *testing.T) {
	a := Fingerprint("registry")
	b := Fingerprint("registry")
	if a != b {
		t.Fatalf("fingerprint not stable: %s vs %s", a, b)
	}
	if len(a) != defaultLength {
		t.Fatalf("expected length %d, got %d", defaultLength, len(a))
	}
	if a == Fingerprint("registry2") {
		t.Fatalf("fingerprint collision on distinct input")
	}
	if len(ShortHash("x", 100)) != 40 {
		t.Fatalf("ShortHash should clamp to digest size")
	}
}
