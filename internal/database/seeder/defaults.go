package seeder

// Defaults returns the seeders in dependency order: postings need the demo
// employer profile.
func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		DemoAccountsSeeder{},
		DemoPostingsSeeder{},
	}
}
