package classify

import "cardwise/internal/domain/value"

// brandEntry ties a set of name keywords to a brand and its parent taxonomy.
// Declaration order is the tie-break: when a name contains keywords of
// several brands, the first entry below wins.
type brandEntry struct {
	brand    value.BrandID
	taxonomy value.Taxonomy
	keywords []string
}

//nolint:gochecknoglobals
var brandLexicon = []brandEntry{
	{value.BrandMarriott, value.TaxonomyHotels, []string{"marriott", "bonvoy"}},
	{value.BrandHilton, value.TaxonomyHotels, []string{"hilton"}},
	{value.BrandHyatt, value.TaxonomyHotels, []string{"hyatt"}},
	{value.BrandIHG, value.TaxonomyHotels, []string{"holiday inn", "ihg", "intercontinental"}},
	{value.BrandWyndham, value.TaxonomyHotels, []string{"wyndham", "ramada", "days inn", "super 8"}},
	{value.BrandChoice, value.TaxonomyHotels, []string{"comfort inn", "quality inn", "clarion", "choice hotels"}},
	{value.BrandUnited, value.TaxonomyTravel, []string{"united airlines", "united air"}},
	{value.BrandDelta, value.TaxonomyTravel, []string{"delta air", "delta flight", "delta sky"}},
	{value.BrandAmerican, value.TaxonomyTravel, []string{"american airlines", "american air"}},
	{value.BrandSouthwest, value.TaxonomyTravel, []string{"southwest"}},
	{value.BrandJetBlue, value.TaxonomyTravel, []string{"jetblue"}},
	{value.BrandAlaska, value.TaxonomyTravel, []string{"alaska air"}},
}

type providerTypeMapping struct {
	taxonomy   value.Taxonomy
	confidence float64
}

// providerTypeMap maps provider type tags (Google Place style) to the
// taxonomy. Confidence reflects how specific the tag is: shared tags like
// department_store sit at 0.5.
//
//nolint:gochecknoglobals
var providerTypeMap = map[string]providerTypeMapping{
	"restaurant":             {value.TaxonomyDining, 0.8},
	"meal_takeaway":          {value.TaxonomyDining, 0.7},
	"meal_delivery":          {value.TaxonomyDining, 0.7},
	"food":                   {value.TaxonomyDining, 0.5},
	"cafe":                   {value.TaxonomyCoffee, 0.8},
	"bakery":                 {value.TaxonomyCoffee, 0.6},
	"grocery_or_supermarket": {value.TaxonomyGroceries, 0.8},
	"supermarket":            {value.TaxonomyGroceries, 0.8},
	"gas_station":            {value.TaxonomyGas, 0.8},
	"lodging":                {value.TaxonomyHotels, 0.8},
	"pharmacy":               {value.TaxonomyPharmacy, 0.8},
	"drugstore":              {value.TaxonomyPharmacy, 0.7},
	"movie_theater":          {value.TaxonomyEntertainment, 0.8},
	"night_club":             {value.TaxonomyEntertainment, 0.7},
	"amusement_park":         {value.TaxonomyEntertainment, 0.7},
	"airport":                {value.TaxonomyTravel, 0.8},
	"travel_agency":          {value.TaxonomyTravel, 0.7},
	"electronics_store":      {value.TaxonomyElectronics, 0.8},
	"hardware_store":         {value.TaxonomyHomeImprovement, 0.8},
	"home_goods_store":       {value.TaxonomyHomeImprovement, 0.5},
	"department_store":       {value.TaxonomyShopping, 0.5},
	"shopping_mall":          {value.TaxonomyShopping, 0.6},
	"clothing_store":         {value.TaxonomyShopping, 0.7},
	"convenience_store":      {value.TaxonomyShopping, 0.5},
	"store":                  {value.TaxonomyShopping, 0.5},
}

type keywordEntry struct {
	keyword    string
	taxonomy   value.Taxonomy
	confidence float64
}

// keywordRules are scanned in order over the business name and any free-form
// location text. Confidence is curated per keyword, 0.5–0.7.
//
//nolint:gochecknoglobals
var keywordRules = []keywordEntry{
	{"restaurant", value.TaxonomyDining, 0.7},
	{"pizza", value.TaxonomyDining, 0.7},
	{"sushi", value.TaxonomyDining, 0.7},
	{"diner", value.TaxonomyDining, 0.7},
	{"grill", value.TaxonomyDining, 0.6},
	{"kitchen", value.TaxonomyDining, 0.6},
	{"taco", value.TaxonomyDining, 0.6},
	{"burger", value.TaxonomyDining, 0.6},
	{"lunch", value.TaxonomyDining, 0.5},
	{"dinner", value.TaxonomyDining, 0.5},
	{"coffee", value.TaxonomyCoffee, 0.7},
	{"espresso", value.TaxonomyCoffee, 0.7},
	{"cafe", value.TaxonomyCoffee, 0.6},
	{"grocery", value.TaxonomyGroceries, 0.7},
	{"supermarket", value.TaxonomyGroceries, 0.7},
	{"market", value.TaxonomyGroceries, 0.5},
	{"gas station", value.TaxonomyGas, 0.7},
	{"fuel", value.TaxonomyGas, 0.6},
	{"pharmacy", value.TaxonomyPharmacy, 0.7},
	{"drug store", value.TaxonomyPharmacy, 0.6},
	{"cinema", value.TaxonomyEntertainment, 0.7},
	{"theater", value.TaxonomyEntertainment, 0.6},
	{"theatre", value.TaxonomyEntertainment, 0.6},
	{"arcade", value.TaxonomyEntertainment, 0.6},
	{"hotel", value.TaxonomyHotels, 0.7},
	{"motel", value.TaxonomyHotels, 0.7},
	{"resort", value.TaxonomyHotels, 0.6},
	{"suites", value.TaxonomyHotels, 0.6},
	{"inn", value.TaxonomyHotels, 0.5},
	{"airline", value.TaxonomyTravel, 0.7},
	{"airways", value.TaxonomyTravel, 0.7},
	{"travel", value.TaxonomyTravel, 0.5},
	{"electronics", value.TaxonomyElectronics, 0.7},
	{"hardware", value.TaxonomyHomeImprovement, 0.7},
	{"home improvement", value.TaxonomyHomeImprovement, 0.7},
	{"lumber", value.TaxonomyHomeImprovement, 0.6},
}
