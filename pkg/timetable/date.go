package timetable

import (
	"regexp"
	"strconv"
	"strings"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeDate converts a raw date token to ISO YYYY-MM-DD, or "" when the
// token does not fit. Already-ISO tokens pass through unchanged. Otherwise
// the token must split on "/" or "-" into three numeric parts ending in a
// 4-digit year, and the first two parts are read as month then day. The
// source spreadsheet is in a fixed US-style format, so the month-first
// reading is applied even for ambiguous values like 04/05/2026.
func NormalizeDate(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if isoDatePattern.MatchString(token) {
		return token
	}

	parts := strings.FieldsFunc(token, func(r rune) bool {
		return r == '/' || r == '-'
	})
	if len(parts) != 3 || len(parts[2]) != 4 {
		return ""
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return ""
		}
	}

	return parts[2] + "-" + pad2(parts[0]) + "-" + pad2(parts[1])
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// rowHasContent reports whether any configured slot cell in the row holds
// real text. Used to decide whether a dateless row should inherit the
// previous row's date (merged date cells in the source).
func rowHasContent(row Row, slots []Slot) bool {
	for _, slot := range slots {
		if len(strings.TrimSpace(row.Cell(slot.Index))) > 1 {
			return true
		}
	}
	return false
}

// resolveRowDate resolves the row's date, falling back to the last known
// date when the row is dateless but carries slot content. The second return
// is the updated last-known-date state.
func resolveRowDate(row Row, slots []Slot, lastDate string) (string, string) {
	token := row.Cell(0)
	if strings.ContainsAny(token, "-/") {
		if iso := NormalizeDate(token); iso != "" {
			return iso, iso
		}
		return "", lastDate
	}
	if lastDate != "" && rowHasContent(row, slots) {
		return lastDate, lastDate
	}
	return "", lastDate
}
