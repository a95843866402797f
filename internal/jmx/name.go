package jmx

import (
	"errors"
	"sort"
	"strings"
)

// ObjectName is a structured resource name of the form
// "domain:key=value,key=value". It is either exact, naming a single
// resource unambiguously, or a pattern: a domain pattern uses * or ? in
// the domain part, a property pattern uses a lone * in the property list
// (typically trailing, as in "java.lang:type=MemoryPool,*").
//
// ObjectName is an immutable value type; construct it with ParseObjectName.
type ObjectName struct {
	domain          string
	properties      map[string]string
	propertyPattern bool
}

// ParseObjectName parses an object name string. Malformed strings return
// an *InvalidNameError.
func ParseObjectName(name string) (ObjectName, error) {
	domain, propList, ok := strings.Cut(name, ":")
	if !ok {
		return ObjectName{}, &InvalidNameError{Name: name, Reason: errors.New("missing ':' separator")}
	}
	if strings.Contains(propList, ":") {
		return ObjectName{}, &InvalidNameError{Name: name, Reason: errors.New("more than one ':' separator")}
	}
	if propList == "" {
		return ObjectName{}, &InvalidNameError{Name: name, Reason: errors.New("empty property list")}
	}

	on := ObjectName{
		domain:     domain,
		properties: make(map[string]string),
	}
	for _, item := range strings.Split(propList, ",") {
		if item == "*" {
			if on.propertyPattern {
				return ObjectName{}, &InvalidNameError{Name: name, Reason: errors.New("duplicate '*' in property list")}
			}
			on.propertyPattern = true
			continue
		}
		key, value, ok := strings.Cut(item, "=")
		if !ok || key == "" {
			return ObjectName{}, &InvalidNameError{Name: name, Reason: errors.New("property list item is not key=value")}
		}
		if _, dup := on.properties[key]; dup {
			return ObjectName{}, &InvalidNameError{Name: name, Reason: errors.New("duplicate property key " + key)}
		}
		on.properties[key] = value
	}
	return on, nil
}

// Domain returns the domain part of the name.
func (n ObjectName) Domain() string { return n.domain }

// Property returns the value of a single key property, or "" if absent.
func (n ObjectName) Property(key string) string { return n.properties[key] }

// IsDomainPattern reports whether the domain part contains wildcards.
func (n ObjectName) IsDomainPattern() bool {
	return strings.ContainsAny(n.domain, "*?")
}

// IsPropertyPattern reports whether the property list contains a '*'.
func (n ObjectName) IsPropertyPattern() bool { return n.propertyPattern }

// IsPattern reports whether the name is a pattern in either form. A
// pattern may match zero, one, or many resources on the server.
func (n ObjectName) IsPattern() bool {
	return n.IsDomainPattern() || n.propertyPattern
}

// Canonical returns the canonical string form: the domain followed by the
// key properties in lexical key order, with a trailing ",*" for property
// patterns. Two ObjectNames naming the same resource have equal canonical
// forms regardless of the property order they were written in.
func (n ObjectName) Canonical() string {
	keys := make([]string, 0, len(n.properties))
	for k := range n.properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(n.domain)
	sb.WriteByte(':')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(n.properties[k])
	}
	if n.propertyPattern {
		if len(keys) > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('*')
	}
	return sb.String()
}

// String returns the canonical form.
func (n ObjectName) String() string { return n.Canonical() }

// Equal reports whether two names denote the same resource or pattern.
func (n ObjectName) Equal(other ObjectName) bool {
	return n.Canonical() == other.Canonical()
}
