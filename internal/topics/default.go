package topics

// DefaultProfiles is the built-in table of Indian cities. "vada pav" is
// deliberately absent: it is famous in both Pune and Mumbai and would break
// marker disjointness.
func DefaultProfiles() []TopicProfile {
	return []TopicProfile{
		{
			Key:     "nagpur",
			Aliases: []string{"nagpur"},
			Markers: []string{"sitabardi", "sitabuldi", "deekshabhoomi", "futala lake", "ambazari lake", "zero mile stone", "maharajbagh", "seminary hills", "ramtek", "saoji", "orange barfi", "tarri poha"},
		},
		{
			Key:     "pune",
			Aliases: []string{"pune", "puna"},
			Markers: []string{"shaniwar wada", "aga khan palace", "sinhagad fort", "osho ashram", "fc road", "laxmi road", "tulsi baug", "dagdusheth halwai", "parvati hill", "misal pav"},
		},
		{
			Key:     "delhi",
			Aliases: []string{"new delhi", "delhi"},
			Markers: []string{"red fort", "india gate", "qutub minar", "chandni chowk", "connaught place", "jama masjid", "lotus temple", "chole bhature", "butter chicken", "parathas"},
		},
		{
			Key:     "mumbai",
			Aliases: []string{"mumbai", "bombay"},
			Markers: []string{"gateway of india", "marine drive", "juhu beach", "colaba causeway", "siddhivinayak temple", "pav bhaji", "bhel puri"},
		},
		{
			Key:     "jaipur",
			Aliases: []string{"jaipur"},
			Markers: []string{"hawa mahal", "city palace", "johari bazaar", "amer fort", "jal mahal", "dal baati churma", "laal maas", "ghevar"},
		},
		{
			Key:     "bangalore",
			Aliases: []string{"bangalore", "bengaluru"},
			Markers: []string{"lalbagh", "cubbon park", "commercial street", "iskcon temple", "vidhana soudha", "masala dosa", "idli vada"},
		},
		{Key: "chennai", Aliases: []string{"chennai", "madras"}},
		{Key: "kolkata", Aliases: []string{"kolkata", "calcutta"}},
		{Key: "hyderabad", Aliases: []string{"hyderabad"}},
		{Key: "udaipur", Aliases: []string{"udaipur"}},
		{Key: "goa", Aliases: []string{"goa"}},
		{Key: "varanasi", Aliases: []string{"varanasi", "banaras", "benares"}},
		{Key: "ahmedabad", Aliases: []string{"ahmedabad"}},
		{Key: "surat", Aliases: []string{"surat"}},
		{Key: "lucknow", Aliases: []string{"lucknow"}},
		{Key: "kanpur", Aliases: []string{"kanpur"}},
	}
}

// Default builds the table from DefaultProfiles. It panics if the built-in
// data violates the table invariants.
func Default() *Table {
	table, err := NewTable(DefaultProfiles())
	if err != nil {
		panic(err)
	}
	return table
}
