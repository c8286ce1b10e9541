package serializer

import "strings"

// DefaultRules apply at every level of every serialization.
var DefaultRules = []string{"-created_at", "-updated_at"}

// ruleSet is the compiled form of the rules in effect for one model.
//
// A rule is a dotted path. A leading "-" excludes the last segment of the
// path; without it the path names a derived field to include. Rules with
// more than one segment are handed down to the field named by the first
// segment with that segment stripped.
type ruleSet struct {
	exclude map[string]bool
	include map[string]bool
	nested  map[string][]string
}

func compile(rules []string) ruleSet {
	rs := ruleSet{
		exclude: make(map[string]bool),
		include: make(map[string]bool),
		nested:  make(map[string][]string),
	}

	for _, raw := range rules {
		rule := strings.TrimSpace(raw)
		negate := strings.HasPrefix(rule, "-")
		path := strings.TrimPrefix(rule, "-")
		if path == "" {
			continue
		}

		head, rest, deep := strings.Cut(path, ".")
		if !deep {
			if negate {
				rs.exclude[head] = true
			} else {
				rs.include[head] = true
			}
			continue
		}

		if negate {
			rest = "-" + rest
		} else {
			// asking for something inside a derived field implies the field itself
			rs.include[head] = true
		}
		rs.nested[head] = append(rs.nested[head], rest)
	}

	return rs
}

// admits reports whether f is part of the output under these rules.
// Exclusion wins over inclusion.
func (rs ruleSet) admits(f Field) bool {
	if rs.exclude[f.Name] {
		return false
	}
	if f.Derived {
		return rs.include[f.Name]
	}
	return true
}
