package ansi

import "strings"

// Reserved words common to SQL:2016 and the dialects scanned by this
// package. Dialect specific keywords are left as identifiers.
const reservedKeywords = `all alter and any as asc between both by case cast check collate column
constraint create cross current_date current_time current_timestamp default delete desc
distinct drop else end except exists false fetch for foreign from full group having in
inner insert intersect into is join leading left like limit not null offset on or order
outer primary references right select set some table then to trailing true union unique
update using values when where with`

var reservedWords = func() map[string]struct{} {
	result := make(map[string]struct{})
	for _, word := range strings.Fields(reservedKeywords) {
		result[word] = struct{}{}
	}
	return result
}()

// IsReserved returns true if the given lowercase word is a reserved keyword.
func IsReserved(word string) bool {
	_, ok := reservedWords[word]
	return ok
}
