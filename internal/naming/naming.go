// Package naming provides centralized derivation of identifiers from pattern
// wire strings and reflected type names, plus short deterministic hashes used
// to fingerprint the contract registry. Keeping the rules here lets the
// enumeration, the exporters and the CLI agree on one spelling.
package naming

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

// defaultLength defines the hex length of hashes (bits ~ length * 4).
const defaultLength = 12

// ShortHash returns the hex SHA1 prefix of length n (clamped to digest size).
func ShortHash(s string, n int) string {
	sum := sha1.Sum([]byte(s))
	h := fmt.Sprintf("%x", sum)
	if n > len(h) {
		n = len(h)
	}
	return h[:n]
}

// Fingerprint returns the default-length short hash of s.
func Fingerprint(s string) string {
	return ShortHash(s, defaultLength)
}

// PatternIdentifier normalizes a wire string into an upper-case identifier.
//
//	cluster/helm-repo-list -> CLUSTER_HELM_REPO_LIST
//	SYSTEM_CHECK           -> SYSTEM_CHECK
func PatternIdentifier(wire string) string {
	id := strings.ToUpper(wire)
	id = strings.ReplaceAll(id, "/", "_")
	id = strings.ReplaceAll(id, "-", "_")
	return id
}

// StructRefIdentifier turns a reflected struct reference such as
// "k8s.io/api/core/v1.Pod" into a type name scoped below prefix:
//
//	<prefix>__K8S_IO_API_CORE_V1_POD
func StructRefIdentifier(prefix, ref string) string {
	r := strings.NewReplacer(
		"/", "_",
		".", "_",
		"-", "_",
		",", "_",
		"[", "",
		"]", "",
		"*", "",
		"·", "",
	)
	return prefix + "__" + r.Replace(strings.ToUpper(ref))
}
