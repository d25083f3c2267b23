package normalize

import "strings"

// LikeEscape is the escape character ContainsPattern uses. Queries must pair
// the pattern with `LIKE ? ESCAPE '\'`.
const LikeEscape = `\`

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns free text into a lower-cased LIKE pattern matching it
// as a literal substring.
func ContainsPattern(v string) string {
	return "%" + likeReplacer.Replace(strings.ToLower(v)) + "%"
}
