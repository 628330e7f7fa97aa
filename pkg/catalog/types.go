package catalog

// Recommendation captures how strongly a service should be suggested when its
// category is triggered.
type Recommendation string

const (
	RecommendYes         Recommendation = "yes"
	RecommendNo          Recommendation = "no"
	RecommendConditional Recommendation = "conditional"
)

// EngagementType identifies the commercial model of a category.
type EngagementType string

const (
	EngagementFixedFee         EngagementType = "fixed_fee"
	EngagementRetainer         EngagementType = "retainer"
	EngagementTimeAndMaterials EngagementType = "tm"
	EngagementAny              EngagementType = "any"
)

var engagementLabels = map[EngagementType]string{
	EngagementFixedFee:         "Fixed Fee",
	EngagementRetainer:         "Retainer",
	EngagementTimeAndMaterials: "Time & Materials",
	EngagementAny:              "Any",
}

// Label returns the human readable name of the engagement type. Unknown codes
// are returned unchanged.
func (e EngagementType) Label() string {
	if label, ok := engagementLabels[e]; ok {
		return label
	}
	return string(e)
}

// Pricing holds the optional commercial figures of a service. A nil pointer
// means the value was not provided; zero is a real value.
type Pricing struct {
	TermLow      *int
	TermHigh     *int
	BudgetLow    *int
	BudgetHigh   *int
	PctProject   *float64
	PctPaidMedia *float64
}

// Service is one row of the "Services Master" sheet.
type Service struct {
	Category       string
	Name           string
	Recommend      Recommendation
	Condition      string
	Bundle         string
	EngagementType EngagementType
	Pricing        Pricing
	Note           string

	// Row is the 1-based spreadsheet row the service was read from.
	Row int
}

// Bundled reports whether the service belongs to a named bundle.
func (s Service) Bundled() bool {
	return s.Bundle != ""
}

// BundleLineItem reports whether the service is a bundle sub-item whose price
// is carried by the bundle's own row. Such services stay in the catalog but
// are left out of the pricing guide table.
func (s Service) BundleLineItem() bool {
	return s.Bundled() &&
		s.Pricing.BudgetLow == nil &&
		s.Pricing.PctProject == nil &&
		s.Pricing.PctPaidMedia == nil
}

// TriggerPatterns groups the free-text cues associated with a category.
type TriggerPatterns struct {
	Direct         []string
	Indirect       []string
	Situational    []string
	Performance    []string
	SampleLanguage []string
}

// TriggerSet is one row of the "Trigger Patterns" sheet.
type TriggerSet struct {
	ID             string
	Category       string
	Description    string
	EngagementType EngagementType
	Patterns       TriggerPatterns

	Row int
}

// Workbook is the in-memory result of reading both sheets. Services keep
// their row order; Triggers is keyed by category name.
type Workbook struct {
	Services []Service
	Triggers map[string]TriggerSet
}

// Category is a group of services rendered as a single catalog entry.
type Category struct {
	ID             string
	Name           string
	Description    string
	EngagementType EngagementType
	Services       []Service
	Triggers       TriggerPatterns

	// Matched is true when a TriggerSet exists for the category.
	Matched bool
}

// Catalog is the grouped view both generated blocks are rendered from.
type Catalog struct {
	Categories  []Category
	Services    int
	TriggerSets int
}
