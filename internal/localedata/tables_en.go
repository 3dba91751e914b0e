package localedata

// English dictionary tables. Entries are ordinary, common values; the
// engine picks indices deterministically, so table order matters for
// output stability and must not be reshuffled casually.
var enTables = map[string][]string{
	CategoryFirstNameFemale: {
		"Alice", "Barbara", "Carol", "Diane", "Emily", "Fiona", "Grace",
		"Hannah", "Irene", "Julia", "Karen", "Laura", "Megan", "Nancy",
		"Olivia", "Paula", "Rachel", "Sarah", "Teresa", "Valerie",
		"Wendy", "Yvonne", "Zoe", "Amber", "Bridget", "Claire", "Donna",
		"Eleanor", "Felicity", "Gina", "Heather", "Iris",
	},
	CategoryFirstNameMale: {
		"Aaron", "Brian", "Charles", "Daniel", "Edward", "Frank",
		"George", "Henry", "Ian", "James", "Kevin", "Louis", "Michael",
		"Nathan", "Oliver", "Patrick", "Quentin", "Robert", "Samuel",
		"Thomas", "Victor", "Walter", "Xavier", "Adam", "Bruce",
		"Colin", "David", "Eric", "Felix", "Gordon", "Harold", "Isaac",
	},
	CategoryLastName: {
		"Anderson", "Baker", "Carter", "Davis", "Evans", "Foster",
		"Green", "Harris", "Irwin", "Johnson", "Kennedy", "Lewis",
		"Mitchell", "Nelson", "Owens", "Parker", "Quinn", "Roberts",
		"Smith", "Turner", "Underwood", "Vaughn", "Walker", "Young",
		"Adams", "Brooks", "Collins", "Dawson", "Elliott", "Fisher",
		"Graham", "Hughes",
	},
	CategoryStreetName: {
		"Maple Street", "Oak Avenue", "Cedar Lane", "Elm Drive",
		"Pine Road", "Birch Court", "Willow Way", "Chestnut Street",
		"Hillside Avenue", "Lakeview Drive", "Meadow Lane",
		"Orchard Road", "Park Avenue", "River Street", "Spring Lane",
		"Sunset Boulevard", "Valley Road", "Washington Street",
		"Highland Avenue", "Forest Drive", "Garden Court",
		"Harbor Road", "Kings Road", "Liberty Street",
	},
	CategoryCity: {
		"Springfield", "Riverside", "Fairview", "Franklin",
		"Greenville", "Bristol", "Clinton", "Georgetown", "Madison",
		"Salem", "Ashland", "Burlington", "Clayton", "Dover",
		"Kingston", "Lebanon", "Milton", "Newport", "Oxford",
		"Winchester",
	},
	CategoryEmailDomain: {
		"example.com", "example.org", "example.net", "mail.example.com",
		"post.example.org", "inbox.example.net",
	},
}
