// Package catalog holds the fixed vocabularies shared by the listings store,
// the insights aggregator and the HTTP layer.
package catalog

// PageSize is the number of listings returned per page by every backend.
const PageSize = 20

// WeakSpotThreshold is the coverage percentage under which a non-zero service is a weak spot.
const WeakSpotThreshold = 25

// Attribute pairs a boolean listing column with its display label.
type Attribute struct {
	Key   string
	Label string
}

// Service keys as stored on the listings table.
const (
	SvcFullGroom     = "svc_full_groom"
	SvcBathOnly      = "svc_bath_only"
	SvcNailTrim      = "svc_nail_trim"
	SvcDeshedding    = "svc_deshedding"
	SvcTeethBrushing = "svc_teeth_brushing"
	SvcEarCleaning   = "svc_ear_cleaning"
	SvcFleaTreatment = "svc_flea_treatment"
	SvcPuppyGroom    = "svc_puppy_groom"
	SvcSeniorGroom   = "svc_senior_groom"
	SvcDematting     = "svc_dematting"
	SvcBreedCuts     = "svc_breed_cuts"
)

// Feature keys as stored on the listings table.
const (
	FeatureLicensed        = "is_licensed"
	FeatureInsured         = "is_insured"
	FeatureFearFree        = "fear_free_certified"
	FeatureNaturalProducts = "uses_natural_products"
	FeatureCageFree        = "cage_free"
	FeatureOneOnOne        = "one_on_one_attention"
	FeatureOnlineBooking   = "online_booking"
)

// AcceptsCats is the pet-type column used by the cats gate.
const AcceptsCats = "accepts_cats"

// Labels for the specialty attributes reported by market insights.
const (
	LabelCatGrooming = "Cat Grooming"
	LabelFearFree    = "Fear Free Certified"
)

// Breed sizes a listing may accept.
const (
	BreedSmall  = "small"
	BreedMedium = "medium"
	BreedLarge  = "large"
	BreedGiant  = "giant"
)

var services = []Attribute{
	{Key: SvcFullGroom, Label: "Full Groom"},
	{Key: SvcBathOnly, Label: "Bath Only"},
	{Key: SvcNailTrim, Label: "Nail Trim"},
	{Key: SvcDeshedding, Label: "Deshedding"},
	{Key: SvcTeethBrushing, Label: "Teeth Brushing"},
	{Key: SvcEarCleaning, Label: "Ear Cleaning"},
	{Key: SvcFleaTreatment, Label: "Flea Treatment"},
	{Key: SvcPuppyGroom, Label: "Puppy Groom"},
	{Key: SvcSeniorGroom, Label: "Senior Groom"},
	{Key: SvcDematting, Label: "Dematting"},
	{Key: SvcBreedCuts, Label: "Breed Cuts"},
}

var features = []Attribute{
	{Key: FeatureLicensed, Label: "Licensed"},
	{Key: FeatureInsured, Label: "Insured"},
	{Key: FeatureFearFree, Label: LabelFearFree},
	{Key: FeatureNaturalProducts, Label: "Natural Products"},
	{Key: FeatureCageFree, Label: "Cage Free"},
	{Key: FeatureOneOnOne, Label: "One-on-One Attention"},
	{Key: FeatureOnlineBooking, Label: "Online Booking"},
}

var breedSizes = []string{BreedSmall, BreedMedium, BreedLarge, BreedGiant}

var serviceIndex = func() map[string]string {
	idx := make(map[string]string, len(services))
	for _, svc := range services {
		idx[svc.Key] = svc.Label
	}
	return idx
}()

// Services returns the eleven service attributes in display order.
func Services() []Attribute {
	return append([]Attribute(nil), services...)
}

// Features returns the seven feature attributes in display order.
func Features() []Attribute {
	return append([]Attribute(nil), features...)
}

// BreedSizes returns every known breed size, smallest first.
func BreedSizes() []string {
	return append([]string(nil), breedSizes...)
}

// IsService reports whether key names one of the fixed service columns.
func IsService(key string) bool {
	_, ok := serviceIndex[key]
	return ok
}

// IsBreedSize reports whether size is a known breed size.
func IsBreedSize(size string) bool {
	for _, s := range breedSizes {
		if s == size {
			return true
		}
	}
	return false
}
