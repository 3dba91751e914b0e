package localedata

// German dictionary tables. Same ordering contract as the English tables.
var deTables = map[string][]string{
	CategoryFirstNameFemale: {
		"Anna", "Birgit", "Claudia", "Daniela", "Elke", "Franziska",
		"Gabriele", "Hannelore", "Ingrid", "Jutta", "Katharina",
		"Lena", "Monika", "Nadine", "Petra", "Renate", "Sabine",
		"Tanja", "Ursula", "Verena", "Yvonne", "Angelika", "Beate",
		"Christina", "Dagmar", "Erika", "Friederike", "Gisela",
	},
	CategoryFirstNameMale: {
		"Andreas", "Bernd", "Christian", "Dieter", "Erik", "Florian",
		"Gerhard", "Heinz", "Ingo", "Jan", "Klaus", "Lukas",
		"Matthias", "Norbert", "Oliver", "Peter", "Rainer", "Stefan",
		"Thomas", "Uwe", "Volker", "Werner", "Alexander", "Bastian",
		"Carsten", "Dominik", "Erwin", "Frank",
	},
	CategoryLastName: {
		"Bauer", "Becker", "Fischer", "Hoffmann", "Klein", "Koch",
		"Krause", "Lehmann", "Meyer", "Neumann", "Richter",
		"Schmidt", "Schneider", "Schulz", "Schwarz", "Vogel",
		"Wagner", "Weber", "Wolf", "Zimmermann", "Braun", "Hartmann",
		"Keller", "Lange", "Peters", "Schreiber", "Voigt", "Winkler",
	},
	CategoryStreetName: {
		"Hauptstrasse", "Bahnhofstrasse", "Gartenstrasse",
		"Schulstrasse", "Lindenweg", "Birkenallee", "Amselweg",
		"Dorfstrasse", "Bergstrasse", "Waldweg", "Ringstrasse",
		"Kirchgasse", "Rosenweg", "Muehlenweg", "Feldstrasse",
		"Wiesenweg", "Am Markt", "Eichenweg", "Kastanienallee",
		"Tannenweg",
	},
	CategoryCity: {
		"Neustadt", "Altdorf", "Gruenberg", "Lindau", "Rosenheim",
		"Friedberg", "Steinfurt", "Waldheim", "Bergdorf", "Seeburg",
		"Hochfeld", "Brunnental", "Weidenbach", "Kirchheim",
		"Mittelstadt", "Oberdorf",
	},
	CategoryEmailDomain: {
		"beispiel.de", "beispiel.org", "mail.beispiel.de",
		"post.beispiel.org",
	},
}
