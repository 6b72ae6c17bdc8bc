package artworks

// Where a piece physically is right now. The values are a closed set; anything
// else is rejected at the API boundary.
const (
	LocationHome        = "domicile"
	LocationStorage     = "stockage"
	LocationOnLoan      = "pretee"
	LocationRestoration = "restauration"
	LocationFraming     = "encadrement"
	LocationReturn      = "restitution"
	LocationForSale     = "vente"
	LocationSold        = "vendue"
	LocationLost        = "perdue"
	LocationStolen      = "volée"
	LocationOther       = "autre"
)

const DefaultLocation = LocationHome

var Locations = []string{
	LocationHome, LocationStorage, LocationOnLoan, LocationRestoration,
	LocationFraming, LocationReturn, LocationForSale, LocationSold,
	LocationLost, LocationStolen, LocationOther,
}

// AvailableLocations is the subset eligible for a rotation suggestion: pieces
// at home or in storage, not already out of the house.
var AvailableLocations = []string{LocationHome, LocationStorage}

func IsValidLocation(s string) bool {
	for _, l := range Locations {
		if l == s {
			return true
		}
	}
	return false
}
