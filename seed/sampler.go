package seed

import "math/rand"

// Sampler supplies the raw material for generated records. The seeder only
// depends on this interface, so the randomness source is swappable in tests.
type Sampler interface {
	FirstName() string
	LastName() string
	City() string
	PropertyType() string
	Amenities() []string
	Comment() string
	SpecialRequest() string
	// IntBetween returns a value in [min, max] inclusive.
	IntBetween(min, max int) int
}

// NewSampler builds the default pseudo-random sampler. A fixed seed makes
// runs reproducible.
func NewSampler(seed int64) Sampler {
	return &randSampler{r: rand.New(rand.NewSource(seed))}
}

type randSampler struct {
	r *rand.Rand
}

var firstNames = []string{
	"John", "Jane", "Mike", "Sarah", "David", "Emma", "Chris", "Lisa",
	"Tom", "Anna", "James", "Maria", "Robert", "Jennifer", "William",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"San Francisco", "Indianapolis", "Seattle", "Denver", "Boston",
}

var propertyTypes = []string{
	"Cozy Apartment", "Luxury Villa", "Beach House", "Mountain Cabin",
	"City Loft", "Country Cottage", "Modern Condo", "Historic Home",
	"Penthouse Suite", "Charming Studio", "Family House", "Resort Room",
}

var amenitySets = [][]string{
	{"WiFi", "Kitchen", "Parking"},
	{"WiFi", "Pool", "Gym", "Kitchen"},
	{"WiFi", "Beach Access", "Kitchen", "Parking"},
	{"WiFi", "Mountain View", "Fireplace", "Kitchen"},
	{"WiFi", "City View", "Gym", "Rooftop"},
	{"WiFi", "Garden", "Kitchen", "Parking"},
	{"WiFi", "Kitchen", "Balcony", "Gym"},
	{"WiFi", "Historic Features", "Kitchen", "Parking"},
	{"WiFi", "City View", "Luxury Amenities", "Concierge"},
	{"WiFi", "Kitchen", "Backyard", "Parking"},
	{"WiFi", "Pool", "Spa", "Restaurant"},
}

var reviewComments = []string{
	"Amazing place! Highly recommended.",
	"Great location and very clean.",
	"Perfect for a weekend getaway.",
	"Host was very responsive and helpful.",
	"Beautiful property with great amenities.",
	"Exactly as described. Will book again!",
	"Fantastic experience overall.",
	"Great value for money.",
	"Very comfortable and well-equipped.",
	"Excellent location close to everything.",
	"Clean, comfortable, and convenient.",
	"Would definitely stay here again.",
	"Perfect for families.",
	"Great host and beautiful property.",
	"Exceeded our expectations!",
}

var specialRequests = []string{
	"", "Late check-in requested", "Extra towels please",
	"Quiet room preferred", "Ground floor if possible",
}

func (s *randSampler) pick(options []string) string {
	return options[s.r.Intn(len(options))]
}

func (s *randSampler) FirstName() string    { return s.pick(firstNames) }
func (s *randSampler) LastName() string     { return s.pick(lastNames) }
func (s *randSampler) City() string         { return s.pick(cities) }
func (s *randSampler) PropertyType() string { return s.pick(propertyTypes) }

func (s *randSampler) Amenities() []string {
	return amenitySets[s.r.Intn(len(amenitySets))]
}

func (s *randSampler) Comment() string        { return s.pick(reviewComments) }
func (s *randSampler) SpecialRequest() string { return s.pick(specialRequests) }

func (s *randSampler) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}
