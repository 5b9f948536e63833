package services

import (
	"regexp"
	"sort"
	"strings"

	"rf-wms/models"
)

// LookupService turns a scanned or typed code into an entity reference. It
// is read-only: every method is a pure function of its arguments.
type LookupService struct {
	// WarehousePrefix is the implicit prefix tried on short numeric codes,
	// e.g. "01-". Operators scan "0002", the stored bin is "01-0002".
	WarehousePrefix string
}

func NewLookupService(warehousePrefix string) *LookupService {
	return &LookupService{WarehousePrefix: warehousePrefix}
}

// LookupResult holds exactly one of Bin, Item or Matches. Matches is set
// when more than one item candidate remains and the caller must
// disambiguate.
type LookupResult struct {
	Type    string              `json:"type"` // "bin" or "item"
	Bin     *models.BinLocation `json:"bin,omitempty"`
	Item    *models.Item        `json:"item,omitempty"`
	Matches []models.Item       `json:"matches,omitempty"`
}

var binCodePattern = regexp.MustCompile(`^\d{2,6}$`)

// LooksLikeBinCode reports whether input could be a bin code: 2-6 digits,
// dashes allowed ("0002", "0528", "01-0002").
func (s *LookupService) LooksLikeBinCode(input string) bool {
	cleaned := strings.ReplaceAll(input, "-", "")
	return binCodePattern.MatchString(cleaned)
}

// FullBinCode adds the warehouse prefix if not already present.
func (s *LookupService) FullBinCode(binCode string) string {
	if strings.HasPrefix(binCode, s.WarehousePrefix) {
		return binCode
	}
	return s.WarehousePrefix + binCode
}

// DisplayBinCode strips the warehouse prefix for operator display.
func (s *LookupService) DisplayBinCode(binCode string) string {
	return strings.TrimPrefix(binCode, s.WarehousePrefix)
}

// NormalizeInput uppercases and trims a scanned code, adding the warehouse
// prefix when the code looks like a bare bin code. Anything else is returned
// as-is (it might be an item code).
func (s *LookupService) NormalizeInput(input string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(input))

	if strings.HasPrefix(trimmed, s.WarehousePrefix) {
		return trimmed
	}
	if s.LooksLikeBinCode(trimmed) {
		return s.FullBinCode(trimmed)
	}
	return trimmed
}

// buildSearchTerms returns the normalized query plus, when leading zeros can
// be stripped, the stripped variant ("0042" also matches "42").
func buildSearchTerms(query string) []string {
	normalized := strings.ToUpper(strings.TrimSpace(query))
	terms := []string{normalized}

	stripped := strings.TrimLeft(normalized, "0")
	if stripped != "" && stripped != normalized {
		terms = append(terms, stripped)
	}
	return terms
}

// SearchItems finds items by partial item code, bin code or description,
// deduplicated by item code and ranked exact > prefix > alphabetical.
// Queries shorter than two characters return nothing.
func (s *LookupService) SearchItems(query string, allItems []models.Item) []models.Item {
	if len(query) < 2 {
		return nil
	}

	terms := buildSearchTerms(query)

	var matches []models.Item
	for _, item := range allItems {
		if s.itemMatches(item, terms) {
			matches = append(matches, item)
		}
	}

	// Satu hasil per item code
	seen := make(map[string]bool)
	var deduplicated []models.Item
	for _, item := range matches {
		code := strings.ToUpper(item.ItemCode)
		if !seen[code] {
			seen[code] = true
			deduplicated = append(deduplicated, item)
		}
	}

	first := terms[0]
	sort.SliceStable(deduplicated, func(i, j int) bool {
		a, b := deduplicated[i], deduplicated[j]
		aCode := strings.ToUpper(a.ItemCode)
		bCode := strings.ToUpper(b.ItemCode)

		if (aCode == first) != (bCode == first) {
			return aCode == first
		}
		aStarts := strings.HasPrefix(aCode, first)
		bStarts := strings.HasPrefix(bCode, first)
		if aStarts != bStarts {
			return aStarts
		}
		return aCode < bCode
	})

	return deduplicated
}

func (s *LookupService) itemMatches(item models.Item, terms []string) bool {
	itemCode := strings.ToUpper(item.ItemCode)
	for _, term := range terms {
		if strings.Contains(itemCode, term) {
			return true
		}
	}

	if item.BinCode != "" {
		binCode := strings.ToUpper(item.BinCode)
		for _, term := range terms {
			if strings.Contains(binCode, term) {
				return true
			}
		}
		if s.LooksLikeBinCode(terms[0]) && binCode == s.FullBinCode(terms[0]) {
			return true
		}
	}

	description := strings.ToUpper(item.Description)
	for _, term := range terms {
		if strings.Contains(description, term) {
			return true
		}
	}
	return false
}

// Resolve disambiguates a code into a bin or item reference. An exact bin
// match wins over everything, including an item carrying the same code;
// that precedence is deliberate. Returns nil when nothing matches.
func (s *LookupService) Resolve(code string, bins []models.BinLocation, allItems []models.Item) *LookupResult {
	terms := buildSearchTerms(code)
	normalized := terms[0]

	// Exact bin match first, with prefix normalization
	binToFind := normalized
	if s.LooksLikeBinCode(normalized) {
		binToFind = s.FullBinCode(normalized)
	}
	for i := range bins {
		if strings.ToUpper(bins[i].BinCode) == binToFind {
			return &LookupResult{Type: "bin", Bin: &bins[i]}
		}
	}

	// Exact item match
	for i := range allItems {
		itemCode := strings.ToUpper(allItems[i].ItemCode)
		for _, term := range terms {
			if itemCode == term {
				return &LookupResult{Type: "item", Item: &allItems[i]}
			}
		}
	}

	// Partial search
	matches := s.SearchItems(code, allItems)
	switch len(matches) {
	case 0:
		return nil
	case 1:
		return &LookupResult{Type: "item", Item: &matches[0]}
	default:
		return &LookupResult{Type: "item", Matches: matches}
	}
}
