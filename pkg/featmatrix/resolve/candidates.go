package resolve

// GroupCandidates lists header spellings of the grouping key (Tier-1 supplier), highest priority first.
var GroupCandidates = []string{
	"Tier 1", "Tier1", "Tier 1 Supplier", "Tier1 Supplier",
	"Tire 1", "Tire1",
	"Supplier Tier 1", "Supplier_Tier1",
	"Top Supplier", "Primary Supplier",
	"Supplier Family", "SupplierFamily", "Supplier", "Supplier Name", "Tier1_Supplier",
}

// SecondaryCandidates lists header spellings of the secondary key (die family).
var SecondaryCandidates = []string{
	"DieFamily", "Die Family", "TechDieFamily", "Die_Family",
	"Die Family key", "DieFamilyKey", "Die_Family_Key",
}

// SecondaryHint is the substring tried when no secondary candidate matches.
const SecondaryHint = "Die Family"

// EntityCandidates lists header spellings of the entity key (latest company name).
var EntityCandidates = []string{
	"LatestCompanyName", "Latest Company Name", "LatestCompany",
	"CompanyName_Latest",
}

// NonFeatureCandidates lists identifier and bookkeeping columns never offered as features.
var NonFeatureCandidates = []string{
	"PartID", "Part Id", "Part_ID",
	"PartNumber", "Part Number", "PN", "MfrPartNumber",
	"ItemID", "Item Id",
	"CompanyName", "Company Name",
	"LatestCompanyName", "Latest Company Name",
	"Supplier", "Supplier Family",
	"Tier 1", "Tier1", "Tier 1 Supplier", "Tier1 Supplier",
	"Family", "Generic", "Series",
	"MaskedTextNon", "Status", "FinalStatus",
}

// Candidates groups the candidate lists for every role.
type Candidates struct {
	Group         []string `yaml:"group"`
	Secondary     []string `yaml:"secondary"`
	SecondaryHint string   `yaml:"secondary_hint"`
	Entity        []string `yaml:"entity"`
	NonFeature    []string `yaml:"non_feature"`
}

// DefaultCandidates returns the built-in candidate lists.
func DefaultCandidates() Candidates {
	return Candidates{
		Group:         append([]string(nil), GroupCandidates...),
		Secondary:     append([]string(nil), SecondaryCandidates...),
		SecondaryHint: SecondaryHint,
		Entity:        append([]string(nil), EntityCandidates...),
		NonFeature:    append([]string(nil), NonFeatureCandidates...),
	}
}
