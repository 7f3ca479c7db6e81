package models

import "strings"

// tagSeparator is the delimiter clients have always used for tag lists.
const tagSeparator = ","

// JoinTags joins tags into the delimited form.
func JoinTags(tags []string) string {
	return strings.Join(tags, tagSeparator)
}

// SplitTags splits the delimited form back into a list. The empty string
// yields an empty list.
func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, tagSeparator)
}

// NormalizeTags round-trips tags through the delimited form, so a tag that
// itself contains a comma becomes two tags, as it always has.
func NormalizeTags(tags []string) []string {
	return SplitTags(JoinTags(tags))
}
