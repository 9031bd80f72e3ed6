package fixture

type priceTier int

const (
	tierLow priceTier = iota
	tierMid
	tierHigh
)

func (t priceTier) base() int {
	switch t {
	case tierHigh:
		return 65
	case tierMid:
		return 45
	default:
		return 30
	}
}

type metro struct {
	city     string
	state    string
	zip      string
	address  string
	nearby   []string
	areaCode string
	tier     priceTier
}

var metros = []metro{
	{"Houston", "TX", "77027", "4521 Westheimer Rd", []string{"Katy", "Sugar Land", "The Woodlands", "Pearland"}, "713", tierMid},
	{"Austin", "TX", "78704", "1200 S Lamar Blvd", []string{"Round Rock", "Cedar Park", "Pflugerville"}, "512", tierMid},
	{"Dallas", "TX", "75201", "3300 Knox St", []string{"Plano", "Frisco", "Richardson", "Arlington"}, "214", tierMid},
	{"San Antonio", "TX", "78205", "602 E Commerce St", []string{"New Braunfels", "Boerne", "Schertz"}, "210", tierLow},
	{"Fort Worth", "TX", "76102", "815 Main St", []string{"Weatherford", "Burleson", "Keller"}, "817", tierLow},
	{"Los Angeles", "CA", "90069", "8833 W Sunset Blvd", []string{"Santa Monica", "Beverly Hills", "West Hollywood", "Pasadena"}, "310", tierHigh},
	{"San Diego", "CA", "92104", "3120 University Ave", []string{"La Jolla", "Chula Vista", "Encinitas"}, "619", tierHigh},
	{"San Francisco", "CA", "94110", "2400 Mission St", []string{"Daly City", "South San Francisco", "Oakland"}, "415", tierHigh},
	{"San Jose", "CA", "95112", "510 S 1st St", []string{"Sunnyvale", "Santa Clara", "Campbell"}, "408", tierHigh},
	{"Sacramento", "CA", "95814", "1801 L St", []string{"Elk Grove", "Roseville", "Folsom"}, "916", tierMid},
	{"Miami", "FL", "33155", "7250 Coral Way", []string{"Miami Beach", "Coral Gables", "Hialeah", "Doral"}, "305", tierHigh},
	{"Tampa", "FL", "33609", "4015 W Kennedy Blvd", []string{"St. Petersburg", "Clearwater", "Brandon"}, "813", tierMid},
	{"Orlando", "FL", "32801", "55 W Church St", []string{"Kissimmee", "Winter Park", "Sanford"}, "407", tierMid},
	{"Jacksonville", "FL", "32202", "200 E Bay St", []string{"Orange Park", "Atlantic Beach", "Fleming Island"}, "904", tierLow},
	{"New York", "NY", "10001", "142 W 36th St", []string{"Brooklyn", "Queens", "Jersey City"}, "212", tierHigh},
	{"Buffalo", "NY", "14201", "500 Pearl St", []string{"Amherst", "Cheektowaga", "Tonawanda"}, "716", tierLow},
	{"Chicago", "IL", "60614", "2500 N Clark St", []string{"Evanston", "Oak Park", "Naperville", "Schaumburg"}, "312", tierHigh},
	{"Springfield", "IL", "62701", "300 E Monroe St", []string{"Chatham", "Rochester", "Sherman"}, "217", tierLow},
	{"Phoenix", "AZ", "85004", "411 N Central Ave", []string{"Scottsdale", "Tempe", "Mesa", "Chandler"}, "602", tierMid},
	{"Tucson", "AZ", "85701", "150 N Stone Ave", []string{"Marana", "Oro Valley", "Sahuarita"}, "520", tierLow},
	{"Seattle", "WA", "98101", "600 Pine St", []string{"Bellevue", "Redmond", "Kirkland", "Tacoma"}, "206", tierHigh},
	{"Denver", "CO", "80202", "1601 Blake St", []string{"Aurora", "Lakewood", "Boulder", "Thornton"}, "303", tierMid},
	{"Atlanta", "GA", "30309", "1130 Peachtree St NE", []string{"Marietta", "Decatur", "Roswell", "Sandy Springs"}, "404", tierMid},
	{"Nashville", "TN", "37203", "400 Broadway", []string{"Franklin", "Murfreesboro", "Brentwood"}, "615", tierMid},
	{"Charlotte", "NC", "28202", "301 S Tryon St", []string{"Huntersville", "Matthews", "Concord"}, "704", tierMid},
	{"Raleigh", "NC", "27601", "220 Fayetteville St", []string{"Durham", "Cary", "Chapel Hill"}, "919", tierMid},
	{"Portland", "OR", "97209", "1000 NW Lovejoy St", []string{"Beaverton", "Lake Oswego", "Tigard"}, "503", tierMid},
	{"Las Vegas", "NV", "89101", "150 Las Vegas Blvd N", []string{"Henderson", "North Las Vegas", "Summerlin"}, "702", tierMid},
	{"Minneapolis", "MN", "55401", "250 Marquette Ave S", []string{"St. Paul", "Bloomington", "Edina", "Plymouth"}, "612", tierMid},
	{"Boston", "MA", "02116", "200 Boylston St", []string{"Cambridge", "Brookline", "Somerville", "Newton"}, "617", tierHigh},
	{"Detroit", "MI", "48226", "1001 Woodward Ave", []string{"Dearborn", "Royal Oak", "Troy", "Ann Arbor"}, "313", tierLow},
	{"Philadelphia", "PA", "19103", "1700 Market St", []string{"Cherry Hill", "King of Prussia", "Media"}, "215", tierMid},
	{"Pittsburgh", "PA", "15222", "220 Fort Duquesne Blvd", []string{"Cranberry Twp", "Bethel Park", "Monroeville"}, "412", tierLow},
	{"Kansas City", "MO", "64106", "300 W 12th St", []string{"Overland Park", "Olathe", "Independence"}, "816", tierLow},
	{"St. Louis", "MO", "63101", "100 N Broadway", []string{"Clayton", "Kirkwood", "Chesterfield"}, "314", tierLow},
	{"Columbus", "OH", "43215", "200 Civic Center Dr", []string{"Dublin", "Westerville", "Grove City"}, "614", tierLow},
	{"Indianapolis", "IN", "46204", "10 W Market St", []string{"Carmel", "Fishers", "Greenwood"}, "317", tierLow},
	{"Salt Lake City", "UT", "84101", "50 E South Temple", []string{"Sandy", "Provo", "West Jordan"}, "801", tierMid},
	{"New Orleans", "LA", "70130", "333 Canal St", []string{"Metairie", "Kenner", "Slidell"}, "504", tierMid},
	{"Milwaukee", "WI", "53202", "710 N Plankinton Ave", []string{"Wauwatosa", "Brookfield", "Waukesha"}, "414", tierLow},
}

var namePrefixes = []string{
	"Pawfect", "Happy Tails", "Fluffy", "Pampered Paws", "Furry Friends",
	"VIP Pet", "Bark & Shine", "Wag N Wash", "Posh Paws", "Gentle Touch",
	"The Grooming", "Premier", "Royal", "Sparkle", "Snip & Clip",
	"All Paws", "Lucky Dog", "Top Dog", "Fur Baby", "Clean Paws",
	"Golden", "Diamond", "Elite", "Express", "Cozy",
}

var nameSuffixes = []string{
	"Mobile Grooming", "Mobile Spa", "Pet Spa", "on Wheels", "Mobile Pet Care",
	"Grooming Co.", "Pet Services", "Mobile Salon", "Door-to-Door Grooming", "Pet Grooming",
}
