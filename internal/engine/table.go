package engine

import (
	"regexp"
	"sort"
	"strings"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

// ColumnRole is one semantic column of a tabular block.
type ColumnRole struct {
	Name      string
	Synonyms  []string
	Normalize Normalizer
}

func (r *ColumnRole) normalizer() Normalizer {
	if r.Normalize != nil {
		return r.Normalize
	}
	return NormalizeText
}

// clean applies header-literal rejection then the role's normalizer, so a
// repeated header row inside the body never leaks in as data.
func (r *ColumnRole) clean(raw string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if upper == "" {
		return "", false
	}
	for _, syn := range r.Synonyms {
		if upper == strings.ToUpper(syn) {
			return "", false
		}
	}
	return r.normalizer()(raw)
}

// TableConfig parameterizes detection and extraction of one tabular block.
type TableConfig struct {
	// HeaderKeywords is the fixed set counted per row by the header-row
	// strategy.
	HeaderKeywords []string
	// MinHeaderHits is the qualifying keyword count (default 3).
	MinHeaderHits int
	// ScanCols bounds how many leading cells of a row are searched for
	// keywords (default 15).
	ScanCols int
	// ScanRows bounds the top-down header/sentinel search (default 100).
	ScanRows int
	// Roles are the semantic columns to map and read.
	Roles []ColumnRole
	// AnchorRole names the primary-key role; its column decides row
	// emission and termination. Falls back to column 0 when unmapped.
	AnchorRole string
	// AnchorPattern validates an anchor value before a row is emitted.
	AnchorPattern *regexp.Regexp
	// SentinelPattern is the column-0 regex of the fallback strategy: the
	// first matching row is the first data row of a headerless table.
	SentinelPattern *regexp.Regexp
	// FixedColumns maps role names to positions under the sentinel
	// strategy.
	FixedColumns map[string]int
	// Terminators end the walk when the anchor text contains one.
	Terminators []string
	// MaxRows caps the body walk (default 500).
	MaxRows int
}

func (c *TableConfig) minHits() int {
	if c.MinHeaderHits > 0 {
		return c.MinHeaderHits
	}
	return 3
}

func (c *TableConfig) scanCols() int {
	if c.ScanCols > 0 {
		return c.ScanCols
	}
	return 15
}

func (c *TableConfig) scanRows() int {
	if c.ScanRows > 0 {
		return c.ScanRows
	}
	return 100
}

func (c *TableConfig) maxRows() int {
	if c.MaxRows > 0 {
		return c.MaxRows
	}
	return 500
}

// DetectStrategy names which detection strategy produced a TableBlock.
type DetectStrategy int

const (
	DetectHeaderRow DetectStrategy = iota
	DetectSentinel
)

func (d DetectStrategy) String() string {
	if d == DetectSentinel {
		return "sentinel"
	}
	return "header-row"
}

// TableBlock is a detected tabular region: where the data starts and which
// column holds which role.
type TableBlock struct {
	HeaderRow int // -1 under the sentinel strategy
	DataStart int
	Columns   map[string]int
	Strategy  DetectStrategy
}

// DetectTable locates the tabular block. The header-row strategy wins when
// any row in the scan window carries enough of the keyword set; otherwise
// the sentinel strategy looks for the first column-0 cell matching the
// record kind's row pattern. Exactly one strategy applies per sheet.
func DetectTable(g *grid.Grid, cfg *TableConfig) (TableBlock, bool) {
	limit := min(cfg.scanRows(), g.RowCount())

	for r := 0; r < limit; r++ {
		if countKeywordHits(g, r, cfg.HeaderKeywords, cfg.scanCols()) >= cfg.minHits() {
			return TableBlock{
				HeaderRow: r,
				DataStart: r + 1,
				Columns:   MapColumns(g, r, cfg),
				Strategy:  DetectHeaderRow,
			}, true
		}
	}

	if cfg.SentinelPattern != nil {
		for r := 0; r < limit; r++ {
			if cfg.SentinelPattern.MatchString(normalizeAnchor(g.Cell(r, 0))) {
				cols := make(map[string]int, len(cfg.FixedColumns))
				for role, col := range cfg.FixedColumns {
					cols[role] = col
				}
				return TableBlock{
					HeaderRow: -1,
					DataStart: r,
					Columns:   cols,
					Strategy:  DetectSentinel,
				}, true
			}
		}
	}

	return TableBlock{}, false
}

// countKeywordHits counts how many distinct keywords appear anywhere in the
// first n cells of a row.
func countKeywordHits(g *grid.Grid, row int, keywords []string, n int) int {
	hits := 0
	limit := min(n, g.ColCount(row))
	for _, kw := range keywords {
		upperKw := strings.ToUpper(kw)
		for c := 0; c < limit; c++ {
			if strings.Contains(strings.ToUpper(g.Cell(row, c)), upperKw) {
				hits++
				break
			}
		}
	}
	return hits
}

// columnScore rates one header cell against one synonym. Exact equality
// always outranks substring containment; within a band, longer synonyms win
// so "TIME START" beats a bare "TIME".
func columnScore(header, synonym string) int {
	if header == synonym {
		return 1000 + len(synonym)
	}
	if strings.Contains(header, synonym) {
		return len(synonym)
	}
	return 0
}

// MapColumns assigns each role to its best-scoring header column. A column
// is claimed by at most one role (the globally higher-scoring claim wins)
// and a role with no synonym hit stays unmapped.
func MapColumns(g *grid.Grid, headerRow int, cfg *TableConfig) map[string]int {
	type claim struct {
		role  int
		col   int
		score int
	}

	limit := min(cfg.scanCols(), g.ColCount(headerRow))
	var claims []claim
	for c := 0; c < limit; c++ {
		header := strings.ToUpper(reSpaces.ReplaceAllString(g.Cell(headerRow, c), " "))
		if header == "" {
			continue
		}
		for i := range cfg.Roles {
			best := 0
			for _, syn := range cfg.Roles[i].Synonyms {
				if s := columnScore(header, strings.ToUpper(syn)); s > best {
					best = s
				}
			}
			if best > 0 {
				claims = append(claims, claim{role: i, col: c, score: best})
			}
		}
	}

	sort.SliceStable(claims, func(i, j int) bool {
		if claims[i].score != claims[j].score {
			return claims[i].score > claims[j].score
		}
		if claims[i].role != claims[j].role {
			return claims[i].role < claims[j].role
		}
		return claims[i].col < claims[j].col
	})

	assigned := make(map[string]int, len(cfg.Roles))
	taken := make(map[int]bool, len(claims))
	for _, cl := range claims {
		name := cfg.Roles[cl.role].Name
		if _, done := assigned[name]; done || taken[cl.col] {
			continue
		}
		assigned[name] = cl.col
		taken[cl.col] = true
	}
	return assigned
}

// normalizeAnchor prepares an anchor cell for pattern checks: uppercased,
// inner whitespace collapsed to a single space.
func normalizeAnchor(raw string) string {
	return strings.ToUpper(strings.TrimSpace(reSpaces.ReplaceAllString(raw, " ")))
}
