package naming

import (
	"fmt"
	"strings"

	utilvalidation "k8s.io/apimachinery/pkg/util/validation"
)

const (
	wireStringMaxLength   = 96
	resourceNameMaxLength = 253
)

func validateDNS1123(name string, maximum int, kind string, check func(string) []string) error {
	if name == "" {
		return fmt.Errorf("%s name must not be empty", kind)
	}
	if len(name) > maximum {
		return fmt.Errorf("%s name exceeds %d characters", kind, maximum)
	}
	if errs := check(name); len(errs) > 0 {
		return fmt.Errorf("invalid %s name: %s", kind, strings.Join(errs, ", "))
	}
	return nil
}

// ValidateNamespaceName checks a Kubernetes namespace name (DNS-1123 label).
func ValidateNamespaceName(name string) error {
	return validateDNS1123(name, utilvalidation.DNS1123LabelMaxLength, "namespace", utilvalidation.IsDNS1123Label)
}

// ValidateResourceName checks a Kubernetes object name (DNS-1123 subdomain).
func ValidateResourceName(name string) error {
	return validateDNS1123(name, resourceNameMaxLength, "resource", utilvalidation.IsDNS1123Subdomain)
}

// ValidateWireString checks the lexical shape of a pattern wire string:
// slash separated segments of letters, digits, '-' and '_'.
func ValidateWireString(s string) error {
	if s == "" {
		return fmt.Errorf("pattern must not be empty")
	}
	if len(s) > wireStringMaxLength {
		return fmt.Errorf("pattern exceeds %d characters", wireStringMaxLength)
	}
	for _, seg := range strings.Split(s, "/") {
		if seg == "" {
			return fmt.Errorf("pattern %q has an empty segment", s)
		}
		for _, r := range seg {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			default:
				return fmt.Errorf("pattern %q contains invalid character %q", s, r)
			}
		}
	}
	return nil
}
