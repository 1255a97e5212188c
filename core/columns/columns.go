// core/columns/columns.go
package columns

import "strings"

// Field identifies one canonical input column the calculator needs.
type Field string

const (
	FieldSite      Field = "site"
	FieldDepth     Field = "depth"
	FieldBlowCount Field = "blow_count"
	FieldContent   Field = "content"
	FieldAmax      Field = "amax"
	FieldIntensity Field = "intensity"
)

// Fields returns all canonical fields in resolution order.
func Fields() []Field {
	return []Field{FieldSite, FieldDepth, FieldBlowCount, FieldContent, FieldAmax, FieldIntensity}
}

// canonical column titles as they appear in a well-formed sheet.
var canonical = map[Field]string{
	FieldSite:      "Site Number",
	FieldDepth:     "Saturated Sand Depth ds(m)",
	FieldBlowCount: "Measured SPT Blow Count N",
	FieldContent:   "Clay/Fine Particle Content(%)",
	FieldAmax:      "Surface Peak Acceleration amax(g)",
	FieldIntensity: "Seismic Intensity",
}

// Alias sets, in match-priority order.
var aliases = map[Field][]string{
	FieldSite: {
		"Site Number", "Site ID", "Measurement Point Number", "ID", "Point No", "Point ID",
	},
	FieldDepth: {
		"Saturated Sand Depth ds(m)", "Saturation Depth(m)", "ds",
		"Saturated Burial Depth", "Sand Depth ds", "Burial Depth ds",
	},
	FieldBlowCount: {
		"Measured SPT Blow Count N", "N value", "Measured Penetration Value",
		"Standard Penetration N", "N", "Blow Count N",
	},
	FieldContent: {
		"Clay Content ρc(%)", "ρc", "Clay Content", "Clay Percentage",
		"Fine Particle Content Fc(%)", "Fc", "Fine Particle Percentage",
		"Fine Particle Content",
	},
	FieldAmax: {
		"Surface Peak Acceleration amax(g)", "amax", "Peak Acceleration", "Acceleration Peak",
	},
	FieldIntensity: {
		"Seismic Intensity", "Intensity", "Earthquake Grade",
	},
}

// Canonical returns the canonical sheet title for a field.
func (f Field) Canonical() string { return canonical[f] }

// Normalize strips every rune that is not an ASCII letter/digit or a
// CJK ideograph and lower-cases the remainder, so "Blow Count N" and
// "blow_count_n" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= 0x4e00 && r <= 0x9fa5:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fuzzyMatch reports containment in either direction. Tokens shorter
// than two normalized characters never match fuzzily; a bare "N"
// alias must not claim every header with an "n" in it.
func fuzzyMatch(a, b string) bool {
	if len(a) < 2 || len(b) < 2 {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Mapping maps each resolved field to the raw header that supplies
// it. Unresolved fields are absent.
type Mapping map[Field]string

// Resolve matches raw sheet headers against the canonical fields:
// exact canonical title first, then exact alias, then fuzzy
// containment, first hit winning in alias order. It never fails;
// callers decide whether the gaps block computation.
func Resolve(headers []string) Mapping {
	norm := make([]string, len(headers))
	for i, h := range headers {
		norm[i] = Normalize(h)
	}
	find := func(want string) (string, bool) {
		if want == "" {
			return "", false
		}
		for i, n := range norm {
			if n == want {
				return headers[i], true
			}
		}
		return "", false
	}

	m := Mapping{}
	for _, f := range Fields() {
		if raw, ok := find(Normalize(canonical[f])); ok {
			m[f] = raw
			continue
		}
		matched := false
		for _, a := range aliases[f] {
			if raw, ok := find(Normalize(a)); ok {
				m[f] = raw
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		// Fuzzy pass: first header containing (or contained in) the
		// canonical title or any alias.
	fuzzy:
		for i, n := range norm {
			if fuzzyMatch(n, Normalize(canonical[f])) {
				m[f] = headers[i]
				break fuzzy
			}
			for _, a := range aliases[f] {
				if fuzzyMatch(n, Normalize(a)) {
					m[f] = headers[i]
					break fuzzy
				}
			}
		}
	}
	return m
}

// Required lists the fields every computation needs besides the
// either-or seismic pair.
func Required() []Field {
	return []Field{FieldSite, FieldDepth, FieldBlowCount, FieldContent}
}

// Missing returns the required fields the mapping failed to resolve.
func (m Mapping) Missing() []Field {
	var out []Field
	for _, f := range Required() {
		if m[f] == "" {
			out = append(out, f)
		}
	}
	return out
}

// HasSeismic reports whether at least one of the mutually
// substitutable seismic columns resolved.
func (m Mapping) HasSeismic() bool {
	return m[FieldAmax] != "" || m[FieldIntensity] != ""
}
