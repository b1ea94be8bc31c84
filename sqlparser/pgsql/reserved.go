package pgsql

import "strings"

// Keywords of PostgreSQL 17 that cannot be used as bare identifiers:
// category R of the keyword appendix, followed by category T (reserved,
// but allowed as function or type names).
//
// Source: https://www.postgresql.org/docs/17/sql-keywords-appendix.html
const (
	reservedKeywords = `all analyse analyze and any array as asc asymmetric both case cast
check collate column constraint create current_catalog current_date current_role
current_time current_timestamp current_user default deferrable desc distinct do else
end except false fetch for foreign from grant group having in initially intersect into
lateral leading limit localtime localtimestamp not null offset on only or order placing
primary references returning select session_user some symmetric system_user table then
to trailing true union unique user using variadic when where window with`

	typeFuncKeywords = `authorization binary collation concurrently cross current_schema
freeze full ilike inner is isnull join left like natural notnull outer overlaps right
similar tablesample verbose`
)

var reservedWords = func() map[string]struct{} {
	result := make(map[string]struct{})
	for _, word := range strings.Fields(reservedKeywords + " " + typeFuncKeywords) {
		result[word] = struct{}{}
	}
	return result
}()

// IsReserved returns true if the given lowercase word is a reserved keyword.
func IsReserved(word string) bool {
	_, ok := reservedWords[word]
	return ok
}
