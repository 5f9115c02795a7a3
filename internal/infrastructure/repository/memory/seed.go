package memory

import (
	"time"

	"github.com/riskibarqy/fixture-points/internal/domain/fixture"
)

// ClubWorldCup2025Fixtures is the 2025 FIFA Club World Cup group stage. Kickoff
// times are the published local clock times.
func ClubWorldCup2025Fixtures() []fixture.Fixture {
	return []fixture.Fixture{
		match("cwc25-01", "GW1", "A", "Al Ahly FC", "Inter Miami CF", kickoff(14, 20, 0), "Hard Rock Stadium, Miami Gardens, FL"),
		match("cwc25-02", "GW1", "A", "SE Palmeiras", "FC Porto", kickoff(15, 18, 0), "MetLife Stadium, East Rutherford, NJ"),
		match("cwc25-03", "GW1", "B", "Paris Saint-Germain", "Atlético de Madrid", kickoff(15, 12, 0), "Rose Bowl Stadium, Pasadena, CA"),
		match("cwc25-04", "GW1", "B", "Botafogo FR", "Seattle Sounders FC", kickoff(15, 19, 0), "Lumen Field, Seattle, WA"),
		match("cwc25-05", "GW1", "C", "FC Bayern München", "Auckland City FC", kickoff(15, 12, 0), "TQL Stadium, Cincinnati, OH"),
		match("cwc25-06", "GW1", "C", "CA Boca Juniors", "SL Benfica", kickoff(16, 18, 0), "Hard Rock Stadium, Miami Gardens, FL"),
		match("cwc25-07", "GW1", "D", "CR Flamengo", "Espérance Sportive de Tunis", kickoff(16, 21, 0), "Lincoln Financial Field, Philadelphia, PA"),
		match("cwc25-08", "GW1", "D", "Chelsea FC", "LAFC", kickoff(16, 15, 0), "Mercedes-Benz Stadium, Atlanta, GA"),
		match("cwc25-09", "GW1", "E", "CA River Plate", "Urawa Red Diamonds", kickoff(17, 12, 0), "Lumen Field, Seattle, WA"),
		match("cwc25-10", "GW1", "E", "CF Monterrey", "FC Internazionale Milano", kickoff(17, 18, 0), "Rose Bowl Stadium, Pasadena, CA"),
		match("cwc25-11", "GW1", "F", "Fluminense FC", "Borussia Dortmund", kickoff(17, 12, 0), "MetLife Stadium, East Rutherford, NJ"),
		match("cwc25-12", "GW1", "F", "Ulsan HD FC", "Mamelodi Sundowns FC", kickoff(17, 18, 0), "Inter&Co Stadium, Orlando, FL"),
		match("cwc25-13", "GW1", "G", "Manchester City FC", "Wydad AC", kickoff(18, 12, 0), "Lincoln Financial Field, Philadelphia, PA"),
		match("cwc25-14", "GW1", "G", "Al Ain FC", "Juventus FC", kickoff(18, 21, 0), "Audi Field, Washington, D.C."),
		match("cwc25-15", "GW1", "H", "Real Madrid CF", "Al Hilal SFC", kickoff(18, 15, 0), "Hard Rock Stadium, Miami Gardens, FL"),
		match("cwc25-16", "GW1", "H", "CF Pachuca", "FC Salzburg", kickoff(18, 18, 0), "TQL Stadium, Cincinnati, OH"),
		match("cwc25-17", "GW2", "A", "SE Palmeiras", "Al Ahly FC", kickoff(19, 12, 0), "MetLife Stadium, East Rutherford, NJ"),
		match("cwc25-18", "GW2", "A", "Inter Miami CF", "FC Porto", kickoff(19, 15, 0), "Mercedes-Benz Stadium, Atlanta, GA"),
		match("cwc25-19", "GW2", "B", "Paris Saint-Germain", "Botafogo FR", kickoff(19, 18, 0), "Rose Bowl Stadium, Pasadena, CA"),
		match("cwc25-20", "GW2", "B", "Seattle Sounders FC", "Atlético de Madrid", kickoff(19, 15, 0), "Lumen Field, Seattle, WA"),
		match("cwc25-21", "GW2", "C", "FC Bayern München", "CA Boca Juniors", kickoff(20, 21, 0), "Hard Rock Stadium, Miami Gardens, FL"),
		match("cwc25-22", "GW2", "C", "SL Benfica", "Auckland City FC", kickoff(20, 12, 0), "Inter&Co Stadium, Orlando, FL"),
		match("cwc25-23", "GW2", "D", "CR Flamengo", "Chelsea FC", kickoff(20, 14, 0), "Lincoln Financial Field, Philadelphia, PA"),
		match("cwc25-24", "GW2", "D", "LAFC", "Espérance Sportive de Tunis", kickoff(20, 17, 0), "GEODIS Park, Nashville, TN"),
		match("cwc25-25", "GW2", "E", "CA River Plate", "CF Monterrey", kickoff(21, 18, 0), "Rose Bowl Stadium, Pasadena, CA"),
		match("cwc25-26", "GW2", "E", "FC Internazionale Milano", "Urawa Red Diamonds", kickoff(21, 12, 0), "Lumen Field, Seattle, WA"),
		match("cwc25-27", "GW2", "F", "Fluminense FC", "Ulsan HD FC", kickoff(21, 18, 0), "MetLife Stadium, East Rutherford, NJ"),
		match("cwc25-28", "GW2", "F", "Mamelodi Sundowns FC", "Borussia Dortmund", kickoff(21, 12, 0), "TQL Stadium, Cincinnati, OH"),
		match("cwc25-29", "GW2", "G", "Manchester City FC", "Al Ain FC", kickoff(22, 21, 0), "Mercedes-Benz Stadium, Atlanta, GA"),
		match("cwc25-30", "GW2", "G", "Juventus FC", "Wydad AC", kickoff(22, 12, 0), "Lincoln Financial Field, Philadelphia, PA"),
		match("cwc25-31", "GW2", "H", "Real Madrid CF", "CF Pachuca", kickoff(22, 15, 0), "Bank of America Stadium, Charlotte, NC"),
		match("cwc25-32", "GW2", "H", "FC Salzburg", "Al Hilal SFC", kickoff(22, 18, 0), "Audi Field, Washington, D.C."),
		match("cwc25-33", "GW3", "A", "FC Porto", "Al Ahly FC", kickoff(23, 21, 0), "MetLife Stadium, East Rutherford, NJ"),
		match("cwc25-34", "GW3", "A", "Inter Miami CF", "SE Palmeiras", kickoff(23, 21, 0), "Hard Rock Stadium, Miami Gardens, FL"),
		match("cwc25-35", "GW3", "B", "Atlético de Madrid", "Botafogo FR", kickoff(23, 12, 0), "Rose Bowl Stadium, Pasadena, CA"),
		match("cwc25-36", "GW3", "B", "Seattle Sounders FC", "Paris Saint-Germain", kickoff(23, 12, 0), "Lumen Field, Seattle, WA"),
		match("cwc25-37", "GW3", "C", "Auckland City FC", "CA Boca Juniors", kickoff(24, 14, 0), "GEODIS Park, Nashville, TN"),
		match("cwc25-38", "GW3", "C", "SL Benfica", "FC Bayern München", kickoff(24, 15, 0), "Bank of America Stadium, Charlotte, NC"),
		match("cwc25-39", "GW3", "D", "Espérance Sportive de Tunis", "Chelsea FC", kickoff(24, 21, 0), "Lincoln Financial Field, Philadelphia, PA"),
		match("cwc25-40", "GW3", "D", "LAFC", "CR Flamengo", kickoff(24, 21, 0), "Camping World Stadium, Orlando, FL"),
		match("cwc25-41", "GW3", "E", "Urawa Red Diamonds", "CF Monterrey", kickoff(25, 18, 0), "Rose Bowl Stadium, Pasadena, CA"),
		match("cwc25-42", "GW3", "E", "FC Internazionale Milano", "CA River Plate", kickoff(25, 18, 0), "Lumen Field, Seattle, WA"),
		match("cwc25-43", "GW3", "F", "Borussia Dortmund", "Ulsan HD FC", kickoff(25, 15, 0), "TQL Stadium, Cincinnati, OH"),
		match("cwc25-44", "GW3", "F", "Mamelodi Sundowns FC", "Fluminense FC", kickoff(25, 15, 0), "Hard Rock Stadium, Miami Gardens, FL"),
		match("cwc25-45", "GW3", "G", "Wydad AC", "Al Ain FC", kickoff(26, 15, 0), "Audi Field, Washington, D.C."),
		match("cwc25-46", "GW3", "G", "Juventus FC", "Manchester City FC", kickoff(26, 15, 0), "Camping World Stadium, Orlando, FL"),
		match("cwc25-47", "GW3", "H", "Al Hilal SFC", "CF Pachuca", kickoff(26, 20, 0), "GEODIS Park, Nashville, TN"),
		match("cwc25-48", "GW3", "H", "FC Salzburg", "Real Madrid CF", kickoff(26, 21, 0), "Lincoln Financial Field, Philadelphia, PA"),
	}
}

func kickoff(day, hour, minute int) time.Time {
	return time.Date(2025, time.June, day, hour, minute, 0, 0, time.UTC)
}

func match(id, gameweek, group, home, away string, at time.Time, venue string) fixture.Fixture {
	return fixture.Fixture{
		ID:        id,
		Gameweek:  gameweek,
		HomeTeam:  home,
		AwayTeam:  away,
		KickoffAt: at,
		Venue:     venue,
		Group:     group,
	}
}
