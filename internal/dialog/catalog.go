package dialog

import "time"

const dateLayout = "2006-01-02"

// Sentinel options. Picking one switches the step into its free-text
// sub-state instead of setting the field.
const (
	PackageCustom = "🛠️ PACOTE PERSONALIZADO"
	PriceCustom   = "✏️ VALOR PERSONALIZADO"
	ServerCustom  = "🛠️ SERVIDOR PERSONALIZADO"
	DueDateCustom = "✏️ DATA PERSONALIZADA"

	// NotesSkip is not a sentinel: it stores notes as empty and advances.
	NotesSkip = "⏭️ PULAR"
)

// CatalogConfig carries the product parameters behind the option catalogs.
// The due-date offsets are a business decision, not a fixed algorithm.
type CatalogConfig struct {
	// PeriodDays maps a package label to its billing period in days.
	PeriodDays map[string]int
	// DefaultPeriodDays applies to custom packages.
	DefaultPeriodDays int
	// SuggestionCount is how many period-spaced due dates to offer.
	SuggestionCount int
}

func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{
		PeriodDays: map[string]int{
			"📅 MENSAL":     30,
			"📅 TRIMESTRAL": 90,
			"📅 SEMESTRAL":  180,
			"📅 ANUAL":      365,
		},
		DefaultPeriodDays: 30,
		SuggestionCount:   3,
	}
}

// Catalog is a pure lookup: it never mutates and always returns fresh
// slices, so callers may reorder or append without side effects.
type Catalog struct {
	cfg CatalogConfig
}

func NewCatalog(cfg CatalogConfig) *Catalog {
	return &Catalog{cfg: cfg}
}

func (c *Catalog) Packages() []string {
	return []string{
		"📅 MENSAL",
		"📅 TRIMESTRAL",
		"📅 SEMESTRAL",
		"📅 ANUAL",
		PackageCustom,
	}
}

func (c *Catalog) Prices() []string {
	return []string{
		"30", "35", "40",
		"45", "50", "60",
		"70", "90", "135",
		PriceCustom,
	}
}

func (c *Catalog) Servers() []string {
	return []string{
		"⚡ FAST PLAY",
		"🚀 GOLD PLAY",
		"🎬 CINE FLIX",
		"📡 UNITV",
		"🌐 LIVE 21",
		"⭐ STAR TV",
		"🔥 BLAZE TV",
		"🖥️ P2 SERVER",
		ServerCustom,
	}
}

// SuggestDueDates derives due-date candidates from the package's billing
// period: SuggestionCount dates spaced one period apart, strictly after
// today, plus the custom sentinel. Deterministic for a (pkg, today) pair.
func (c *Catalog) SuggestDueDates(pkg string, today time.Time) []string {
	period, ok := c.cfg.PeriodDays[pkg]
	if !ok || period <= 0 {
		period = c.cfg.DefaultPeriodDays
	}

	out := make([]string, 0, c.cfg.SuggestionCount+1)
	for i := 1; i <= c.cfg.SuggestionCount; i++ {
		out = append(out, today.AddDate(0, 0, period*i).Format(dateLayout))
	}

	return append(out, DueDateCustom)
}
