package langs

// PlaceholderFlag is shown for country codes that do not map to a regional indicator pair.
const PlaceholderFlag = "🏳️"

// regionalIndicatorOffset maps 'A' (65) onto REGIONAL INDICATOR SYMBOL LETTER A (U+1F1E6).
const regionalIndicatorOffset = 127397

// Emoji returns the flag emoji for a two-letter country code.
func Emoji(countryCode string) string {
	if len(countryCode) != 2 {
		return PlaceholderFlag
	}
	runes := make([]rune, 0, 2)
	for i := range 2 {
		c := countryCode[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			return PlaceholderFlag
		}
		runes = append(runes, rune(c)+regionalIndicatorOffset)
	}
	return string(runes)
}
