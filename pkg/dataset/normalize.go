package dataset

import "strings"

const udiseWidth = 11

// Canonical field names used across the three source tables.
const (
	FieldUDISE      = "udise_code"
	FieldDistrict   = "district"
	FieldSchoolName = "school_name"
	FieldManagement = "management"
	FieldCategory   = "category"
	FieldSaplings   = "saplings"
)

// headerSynonyms maps accepted header spellings (normalized) to canonical
// field names. Upload templates from the department drift between exports,
// so every spelling seen so far is listed explicitly.
var headerSynonyms = map[string]string{
	"udisecode": FieldUDISE,
	"udiseid":   FieldUDISE,
	"udiseno":   FieldUDISE,
	"udise":     FieldUDISE,

	"district":     FieldDistrict,
	"districtname": FieldDistrict,

	"schoolname": FieldSchoolName,
	"school":     FieldSchoolName,

	"schoolmanagement": FieldManagement,
	"management":       FieldManagement,
	"schooltype":       FieldManagement,

	"schoolcategory": FieldCategory,
	"category":       FieldCategory,

	"saplings":     FieldSaplings,
	"saplingcount": FieldSaplings,
	"treesplanted": FieldSaplings,
	"noofsaplings": FieldSaplings,
}

// NormalizeHeader reduces a raw column header to its lookup form.
func NormalizeHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\ufeff") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}

// CanonicalField resolves a raw header to a canonical field name.
func CanonicalField(header string) (string, bool) {
	f, ok := headerSynonyms[NormalizeHeader(header)]
	return f, ok
}

// NormalizeUDISE brings a UDISE code to its 11-digit form: trim, drop the
// trailing ".0" spreadsheets append to numeric cells, strip non-digits,
// left-pad with zeros. Returns "" when nothing numeric remains.
func NormalizeUDISE(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".0")
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()
	if d == "" {
		return ""
	}
	if len(d) < udiseWidth {
		d = strings.Repeat("0", udiseWidth-len(d)) + d
	}
	return d
}
