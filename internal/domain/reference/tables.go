package reference

import (
	"github.com/riskibarqy/fixture-points/internal/domain/fdr"
	"github.com/riskibarqy/fixture-points/internal/domain/team"
)

// Tables is the immutable reference data a projection run is built from.
type Tables struct {
	Teams   team.Directory
	Aliases map[string]string
	Venues  fdr.VenueTable
}

// Normalizer builds a name normalizer over the alias table.
func (t Tables) Normalizer() *team.Normalizer {
	aliases := make(map[string]string, len(t.Aliases)+t.Teams.Len())
	for alias, canonical := range t.Aliases {
		aliases[alias] = canonical
	}
	for _, name := range t.Teams.Names() {
		if _, ok := aliases[name]; !ok {
			aliases[name] = name
		}
	}
	return team.NewNormalizer(aliases)
}

const logoBaseURL = "https://fantasyfootball.sgp1.cdn.digitaloceanspaces.com/cwc%20team%20logo/"

func club(name, code string, externalID int64, logo string) team.Team {
	url := logoBaseURL + logo
	return team.Team{Name: name, ShortCode: code, ExternalID: &externalID, ImageURL: &url}
}

// ClubWorldCup2025 returns the reference tables for the 2025 FIFA Club World Cup.
func ClubWorldCup2025() (Tables, error) {
	dir, err := team.NewDirectory(clubWorldCupTeams())
	if err != nil {
		return Tables{}, err
	}
	return Tables{
		Teams:   dir,
		Aliases: clubWorldCupAliases(),
		Venues:  clubWorldCupVenues(),
	}, nil
}

func clubWorldCupTeams() []team.Team {
	return []team.Team{
		club("Al Ahly FC", "AHL", 460, "Al%20Ahly%20FC%20round.png"),
		club("Al Ain FC", "AAN", 7780, "Al%20Ain%20FC%20round.png"),
		club("Al Hilal SFC", "HIL", 7011, "Al%20Hilal%20round.png"),
		club("Atlético de Madrid", "ATM", 7980, "Atl%C3%A9tico%20de%20Madrid%20round.png"),
		club("Auckland City FC", "AFC", 1022, "Auckland%20City%20FC%20round.png"),
		club("SL Benfica", "BEN", 605, "SL%20Benfica%20round.png"),
		club("CA Boca Juniors", "BOC", 587, "CA%20Boca%20Juniors%20round.png"),
		club("Borussia Dortmund", "BVB", 68, "Borussia%20Dortmund%20round.png"),
		club("Botafogo FR", "BOT", 2864, "Botafogo%20round.png"),
		club("Chelsea FC", "CHE", 18, "Chelsea%20FC%20round.png"),
		club("Espérance Sportive de Tunis", "EST", 5832, "Esp%C3%A9rance%20Sportive%20de%20Tunis%20round.png"),
		club("FC Bayern München", "BAY", 503, "FC%20Bayern%20M%C3%BCnchen%20round.png"),
		club("CR Flamengo", "FLA", 1024, "CR%20Flamengo%20round.png"),
		club("Fluminense FC", "FLU", 1095, "Fluminense%20FC%20round.png"),
		club("FC Internazionale Milano", "INT", 2930, "FC%20Internazionale%20Milano%20round.png"),
		club("Inter Miami CF", "MIA", 239235, "Inter%20Miami%20CF%20round.png"),
		club("Juventus FC", "JUV", 625, "Juventus%20FC%20round.png"),
		club("LAFC", "LAF", 147671, "LAFC%20round.png"),
		club("Mamelodi Sundowns FC", "MSF", 6755, "Mamelodi%20Sundowns%20FC%20round.png"),
		club("Manchester City FC", "MCI", 9, "Manchester%20City%20FC%20round.png"),
		club("CF Monterrey", "MON", 2662, "CF%20Monterrey%20round.png"),
		club("CF Pachuca", "PAC", 10036, "CF%20Pachuca%20round.png"),
		club("SE Palmeiras", "PAL", 3422, "SE%20Palmeiras%20round.png"),
		club("Paris Saint-Germain", "PSG", 591, "Paris%20Saint-Germain%20round.png"),
		club("FC Porto", "POR", 652, "FC%20Porto%20round.png"),
		club("Real Madrid CF", "RMA", 3468, "Real%20Madrid%20C.%20F.%20round.png"),
		club("CA River Plate", "RIV", 10002, "CA%20River%20Plate%20round.png"),
		club("FC Salzburg", "SAL", 49, "FC%20Salzburg%20round.png"),
		club("Seattle Sounders FC", "SEA", 2649, "Seattle%20Sounders%20FC%20round.png"),
		club("Ulsan HD FC", "UHD", 5839, "Ulsan%20HD%20round.png"),
		club("Urawa Red Diamonds", "URD", 280, "Urawa%20Red%20Diamonds%20round.png"),
		club("Wydad AC", "WAC", 2846, "Wydad%20AC%20round.png"),
	}
}

func clubWorldCupAliases() map[string]string {
	return map[string]string{
		"Real Madrid":       "Real Madrid CF",
		"Manchester City":   "Manchester City FC",
		"Man City":          "Manchester City FC",
		"Bayern Munich":     "FC Bayern München",
		"Bayern":            "FC Bayern München",
		"PSG":               "Paris Saint-Germain",
		"Paris SG":          "Paris Saint-Germain",
		"Inter":             "FC Internazionale Milano",
		"Inter Milan":       "FC Internazionale Milano",
		"Chelsea":           "Chelsea FC",
		"Atl. Madrid":       "Atlético de Madrid",
		"Atl Madrid":        "Atlético de Madrid",
		"Atletico Madrid":   "Atlético de Madrid",
		"Dortmund":          "Borussia Dortmund",
		"Juventus":          "Juventus FC",
		"Flamengo RJ":       "CR Flamengo",
		"Benfica":           "SL Benfica",
		"Palmeiras":         "SE Palmeiras",
		"Boca Juniors":      "CA Boca Juniors",
		"River Plate":       "CA River Plate",
		"Botafogo RJ":       "Botafogo FR",
		"Fluminense":        "Fluminense FC",
		"Al Hilal":          "Al Hilal SFC",
		"Al-Hilal":          "Al Hilal SFC",
		"Inter Miami":       "Inter Miami CF",
		"Salzburg":          "FC Salzburg",
		"Red Bull Salzburg": "FC Salzburg",
		"Los Angeles FC":    "LAFC",
		"Seattle Sounders":  "Seattle Sounders FC",
		"Al Ahly":           "Al Ahly FC",
		"Al Ahly SC":        "Al Ahly FC",
		"Pachuca":           "CF Pachuca",
		"Urawa Reds":        "Urawa Red Diamonds",
		"Ulsan Hyundai":     "Ulsan HD FC",
		"Ulsan HD":          "Ulsan HD FC",
		"Al Ain":            "Al Ain FC",
		"Monterrey":         "CF Monterrey",
		"Esperance Tunis":   "Espérance Sportive de Tunis",
		"Wydad Athletic":    "Wydad AC",
		"Wydad Casablanca":  "Wydad AC",
		"Mamelodi Sundowns": "Mamelodi Sundowns FC",
		"Auckland City":     "Auckland City FC",

		"Sociedade Esportiva Palmeiras": "SE Palmeiras",
		"Botafogo de Futebol e Regatas": "Botafogo FR",
		"Fluminense Football Club":      "Fluminense FC",
	}
}

func clubWorldCupVenues() fdr.VenueTable {
	east := []string{
		"Hard Rock Stadium, Miami Gardens, FL",
		"MetLife Stadium, East Rutherford, NJ",
		"Lincoln Financial Field, Philadelphia, PA",
		"GEODIS Park, Nashville, TN",
		"Bank of America Stadium, Charlotte, NC",
		"Mercedes-Benz Stadium, Atlanta, GA",
		"Inter&Co Stadium, Orlando, FL",
		"Audi Field, Washington, D.C.",
		"Camping World Stadium, Orlando, FL",
		"TQL Stadium, Cincinnati, OH",
	}
	west := []string{
		"Lumen Field, Seattle, WA",
		"Rose Bowl Stadium, Pasadena, CA",
	}

	regions := make(map[string]fdr.Region, len(east)+len(west))
	for _, v := range east {
		regions[v] = fdr.RegionEast
	}
	for _, v := range west {
		regions[v] = fdr.RegionWest
	}

	return fdr.VenueTable{
		HomeTeams: map[string]string{
			"Hard Rock Stadium, Miami Gardens, FL": "Inter Miami CF",
			"Lumen Field, Seattle, WA":             "Seattle Sounders FC",
		},
		Regions: regions,
	}
}
