package references

// Canonical starter vocabularies. The order matters: bulk imports may refer to
// an entry by its 1-based position in these lists instead of by name.

var DefaultArtTypes = []string{
	"Peinture", "Sculpture", "Photographie", "Gravure",
	"Dessin", "Bande dessinée", "Illustration", "Poésie", "Autre",
}

var DefaultSupports = []string{
	"Toile", "Papier", "Bois", "Métal", "Verre", "Céramique",
	"Pierre", "Textile", "Plastique", "Carton",
}

var DefaultTechniques = []string{
	"Huile", "Acrylique", "Aquarelle", "Pastel", "Encre",
	"Crayon", "Fusain", "Gouache", "Tempera", "Mixte",
}
