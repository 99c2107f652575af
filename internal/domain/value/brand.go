package value

// BrandID identifies a merchant brand with dedicated card bonuses.
type BrandID string

const (
	BrandMarriott  BrandID = "marriott"
	BrandHilton    BrandID = "hilton"
	BrandHyatt     BrandID = "hyatt"
	BrandIHG       BrandID = "ihg"
	BrandWyndham   BrandID = "wyndham"
	BrandChoice    BrandID = "choice"
	BrandUnited    BrandID = "united"
	BrandDelta     BrandID = "delta"
	BrandAmerican  BrandID = "american"
	BrandSouthwest BrandID = "southwest"
	BrandJetBlue   BrandID = "jetblue"
	BrandAlaska    BrandID = "alaska"
)

func (b BrandID) String() string {
	return string(b)
}

func (b BrandID) IsZero() bool {
	return b == ""
}
