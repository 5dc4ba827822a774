package forms

import "strings"

// Historical forms on the site have used several spellings for the same
// logical field. Each list is the accepted aliases in priority order; the
// first non-empty value wins. Keeping the lists here, rather than inlined in
// each handler, stops the three submission paths from drifting apart.
var (
	FullNameKeys    = []string{"fullName", "name", "full_name"}
	PhoneKeys       = []string{"phone", "phoneNumber", "telephone"}
	PostcodeKeys    = []string{"postcode", "postalCode"}
	MessageKeys     = []string{"message", "details", "notes"}
	ProjectTypeKeys = []string{"projectType", "service"}
)

// DefaultSource is recorded when a submission does not say where it came from.
const DefaultSource = "website"

// QuotePlaceholderMessage substitutes for an empty message on quote-source
// submissions instead of rejecting them.
const QuotePlaceholderMessage = "Quote request (no additional details provided)."

// FirstString returns the first non-empty string among the candidate keys in
// body, trimmed. Returns "" when no candidate has usable content.
func FirstString(body map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := body[key]; ok && IsNonEmptyString(v) {
			return strings.TrimSpace(v.(string))
		}
	}
	return ""
}

// Source resolves the submission source, falling back to DefaultSource.
func Source(body map[string]any) string {
	if s := FirstString(body, "source"); s != "" {
		return s
	}
	return DefaultSource
}

// UTM extracts the optional utm metadata object as a flat string map.
// Non-string values and empty strings are dropped.
func UTM(body map[string]any) map[string]string {
	raw, ok := body["utm"].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			out[k] = strings.TrimSpace(s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
