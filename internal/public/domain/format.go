package domain

import (
	"strconv"
	"strings"
)

// ParseAmount extracts a monetary value from a string by stripping every
// non-digit character. An empty or unparseable result counts as zero.
func ParseAmount(s string) int {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// ParseQuantity reads the leading digit run of a quantity field. Missing,
// unparseable or zero quantities count as one item.
func ParseQuantity(s string) int {
	trimmed := strings.TrimSpace(s)
	end := 0
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(trimmed[:end])
	if err != nil || n == 0 {
		return 1
	}
	return n
}

// FormatPrice renders an amount string with thousands separators and the won
// suffix: "650000" becomes "650,000원", an empty value "0원".
func FormatPrice(s string) string {
	return FormatAmount(ParseAmount(s))
}

// FormatAmount renders a numeric amount as a won label.
func FormatAmount(n int) string {
	return groupDigits(n) + "원"
}

func groupDigits(n int) string {
	digits := strconv.Itoa(n)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatBuilding appends the 동 suffix to a bare building number: "208"
// becomes "208동".
func FormatBuilding(building string) string {
	if building == "" {
		return ""
	}
	if strings.HasSuffix(building, "동") {
		return building
	}
	return building + "동"
}

// FormatUnit reduces a unit number to its line: "701" becomes "7호라인".
// Only the first character is kept so the exact unit stays private.
func FormatUnit(unit string) string {
	if unit == "" {
		return ""
	}
	runes := []rune(unit)
	return string(runes[0]) + "호라인"
}

// FormatBuildingUnit combines the building and unit labels: "208동 7호라인".
func FormatBuildingUnit(building, unit string) string {
	return strings.TrimSpace(FormatBuilding(building) + " " + FormatUnit(unit))
}

// FormatConstructionType cleans a raw construction category for display:
// trailing numbers and the 일반 qualifier are removed, and only the first of
// slash-separated variants is kept.
func FormatConstructionType(raw string) string {
	if raw == "" {
		return ""
	}
	formatted := strings.TrimSpace(strings.TrimRightFunc(raw, func(r rune) bool {
		return r >= '0' && r <= '9'
	}))
	formatted = strings.TrimSpace(strings.ReplaceAll(formatted, "일반", ""))
	if idx := strings.Index(formatted, "/"); idx >= 0 {
		formatted = strings.TrimSpace(formatted[:idx])
	}
	return formatted
}

// ConstructionCategory classifies a raw construction type as partition
// (중문), door (도어) or other (기타) for the listing filter.
func ConstructionCategory(raw string) string {
	if raw == "" {
		return "기타"
	}
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "중문"),
		strings.Contains(lower, "슬라이딩"),
		strings.Contains(lower, "연동"):
		return "중문"
	case strings.Contains(lower, "도어"),
		strings.Contains(lower, "짝"),
		strings.Contains(lower, "세트"):
		return "도어"
	default:
		return "기타"
	}
}
