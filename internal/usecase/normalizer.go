package usecase

import "strings"

// cosmeticReplacer strips punctuation that varies between how users type a
// product name and how the catalog spells it ("Coca-Cola" vs "coca cola",
// "L'Oreal" vs "loreal"). Hyphens become spaces, apostrophes disappear.
var cosmeticReplacer = strings.NewReplacer("-", " ", "'", "")

// Normalize lowercases s and removes cosmetic punctuation. Both sides of a
// fuzzy comparison must go through the same normalization. Idempotent.
func Normalize(s string) string {
	return cosmeticReplacer.Replace(strings.ToLower(s))
}
