package carddb

// Builtin returns the small fixed card table exercised by the worked
// examples of spec.md §8: one card per keyword plus the generic
// questers/challengers used in the universal-invariant tests. Field
// values are chosen to match the §8 scenarios exactly (e.g. "Mickey
// Mouse - Brave Little Tailor" at strength 4 / willpower 5 for the
// lethal-damage walkthrough).
func Builtin() *DB {
	db := New()
	for _, r := range []Record{
		{
			Name: "Mickey Mouse - Brave Little Tailor", Cost: 4, Type: TypeCharacter,
			Strength: 4, Willpower: 5, Lore: 2, Inkwell: true,
		},
		{
			Name: "Elsa - Snow Queen", Cost: 6, Type: TypeCharacter,
			Strength: 4, Willpower: 6, Lore: 3, Inkwell: true,
		},
		{
			Name: "Rapid Rush Scout", Cost: 2, Type: TypeCharacter,
			Strength: 2, Willpower: 2, Lore: 1, Inkwell: true,
			Abilities: []Ability{{Keyword: KeywordRush}},
		},
		{
			Name: "Evasive Windrunner", Cost: 3, Type: TypeCharacter,
			Strength: 2, Willpower: 3, Lore: 2, Inkwell: true,
			Abilities: []Ability{{Keyword: KeywordEvasive}},
		},
		{
			Name: "Alert Sentry", Cost: 3, Type: TypeCharacter,
			Strength: 2, Willpower: 4, Lore: 1, Inkwell: true,
			Abilities: []Ability{{Keyword: KeywordAlert}},
		},
		{
			Name: "Bodyguard Golem", Cost: 5, Type: TypeCharacter,
			Strength: 3, Willpower: 6, Lore: 1, Inkwell: false,
			Abilities: []Ability{{Keyword: KeywordBodyguard}},
		},
		{
			Name: "Reckless Brute", Cost: 4, Type: TypeCharacter,
			Strength: 5, Willpower: 4, Lore: 1, Inkwell: true,
			Abilities: []Ability{{Keyword: KeywordReckless}},
		},
		{
			Name: "Dust Imp", Cost: 1, Type: TypeCharacter,
			Strength: 1, Willpower: 1, Lore: 1, Inkwell: true,
		},
		{
			Name: "Sturdy Shieldbearer", Cost: 3, Type: TypeCharacter,
			Strength: 2, Willpower: 5, Lore: 1, Inkwell: true,
		},
		{
			Name: "Minor Madcap", Cost: 2, Type: TypeCharacter,
			Strength: 3, Willpower: 2, Lore: 1, Inkwell: true,
		},
	} {
		db.Register(r)
	}
	return db
}
