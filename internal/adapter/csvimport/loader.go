// Package csvimport reads budget sheet exports from a local directory
// and normalizes them into campaign rows for the budget service.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"adpace/internal/core/domain"
	"adpace/internal/core/engine"
)

// Column aliases seen across real sheet exports, in priority order.
// Header cells are matched after normalizeColumn.
var (
	startAliases    = []string{"start_date", "start", "startdatum", "period_start", "startdate"}
	endAliases      = []string{"end_date", "end", "slutdatum", "period_end", "enddate"}
	budgetAliases   = []string{"total_budget", "budget", "planned_spend", "lifetime_budget", "current_budget", "current_budget_total", "current_total", "assigned_budget"}
	spentAliases    = []string{"total_spent", "spent_to_date", "spent", "spend", "amount_spent", "cost", "current_spend", "current_budget_utilisation"}
	statusAliases   = []string{"status", "current_status", "off_on"}
	groupAliases    = []string{"group", "campaign_group_name", "campaign_group", "campaign_group_budget"}
	campaignAliases = []string{"campaign_name", "campaign"}
)

var (
	columnJunk = regexp.MustCompile(`[^a-z0-9]+`)
	moneyJunk  = regexp.MustCompile(`[^0-9.\-]`)
	anyLetter  = regexp.MustCompile(`[A-Za-z]`)

	// Group paths separate hierarchy levels with "/", "|" or a bare " I ".
	groupSeparators = regexp.MustCompile(`\s*/\s*|\s*\|\s*|\s+I\s+`)
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// channelMarkers map name fragments to ad platforms. When a campaign
// mentions several platforms, the later marker group wins.
var channelMarkers = []struct {
	channel string
	words   []string
}{
	{domain.ChannelLinkedIn, []string{"linkedin", "convo", "spotlight", "si ads", "thought leadership"}},
	{domain.ChannelGoogle, []string{"google", "search", "pmax", "performance max", "display", "rda"}},
	{domain.ChannelMeta, []string{"meta", "facebook", "instagram"}},
}

// LoadDir reads every .csv file in dir in name order and merges rows
// that describe the same campaign across files. Cells with unreadable
// dates fall back to the given day.
func LoadDir(dir string, fallback time.Time) ([]domain.CampaignImport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read import dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var rows []domain.CampaignImport
	for _, name := range names {
		fileRows, err := LoadFile(filepath.Join(dir, name), fallback)
		if err != nil {
			return nil, err
		}
		rows = append(rows, fileRows...)
	}
	return Merge(rows), nil
}

// LoadFile parses one exported sheet. Preamble lines above the header,
// repeated header rows and totals rows are dropped.
func LoadFile(path string, fallback time.Time) ([]domain.CampaignImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	return parseSheet(filepath.Base(path), string(data), fallback)
}

func parseSheet(source, text string, fallback time.Time) ([]domain.CampaignImport, error) {
	lines := strings.Split(text, "\n")

	// Sheet exports often start with title and blank lines. The header
	// is the first line carrying both a comma and a letter.
	header := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Trim(trimmed, ",") == "" {
			continue
		}
		if strings.Contains(line, ",") && anyLetter.MatchString(line) {
			header = i
			break
		}
	}
	if header < 0 {
		return nil, nil
	}

	r := csv.NewReader(strings.NewReader(strings.Join(lines[header:], "\n")))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	headerRow := records[0]
	idx := columnIndex(headerRow)
	groupCol := pick(idx, groupAliases)
	campCol := pick(idx, campaignAliases)
	budgetCol := pick(idx, budgetAliases)
	spentCol := pick(idx, spentAliases)
	statusCol := pick(idx, statusAliases)
	startCol := pick(idx, startAliases)
	endCol := pick(idx, endAliases)

	var rows []domain.CampaignImport
	for _, rec := range records[1:] {
		if isHeaderEcho(headerRow, rec) {
			continue
		}
		group := cell(rec, groupCol)
		name := cell(rec, campCol)
		if isTotalsRow(group) || isTotalsRow(name) {
			continue
		}
		if name == "" {
			name = group
		}
		if name == "" {
			continue
		}

		start, ok := parseDay(cell(rec, startCol))
		if !ok {
			start = fallback
		}
		end, ok := parseDay(cell(rec, endCol))
		if !ok {
			end = fallback
		}

		rows = append(rows, domain.CampaignImport{
			Customer:    customerFromGroup(group),
			Channel:     inferChannel(group + " " + name),
			GroupPath:   group,
			Name:        name,
			Status:      parseStatus(cell(rec, statusCol)),
			StartDate:   start,
			EndDate:     end,
			TotalBudget: ParseMoney(cell(rec, budgetCol)),
			ActualSpend: ParseMoney(cell(rec, spentCol)),
			SourceFile:  source,
		})
	}
	return rows, nil
}

// Merge folds rows with the same customer, channel and name into one.
// Money sums, the flight stretches to the widest dates and the last
// status and source file win.
func Merge(rows []domain.CampaignImport) []domain.CampaignImport {
	type key struct{ customer, channel, name string }
	merged := make(map[key]*domain.CampaignImport, len(rows))
	order := make([]key, 0, len(rows))

	for _, row := range rows {
		k := key{row.Customer, row.Channel, row.Name}
		cur, ok := merged[k]
		if !ok {
			r := row
			merged[k] = &r
			order = append(order, k)
			continue
		}
		cur.TotalBudget += row.TotalBudget
		cur.ActualSpend += row.ActualSpend
		if row.StartDate.Before(cur.StartDate) {
			cur.StartDate = row.StartDate
		}
		if row.EndDate.After(cur.EndDate) {
			cur.EndDate = row.EndDate
		}
		cur.Status = row.Status
		cur.SourceFile = row.SourceFile
	}

	out := make([]domain.CampaignImport, 0, len(order))
	for _, k := range order {
		out = append(out, *merged[k])
	}
	return out
}

// ParseMoney reads a currency cell the way sheets write them: currency
// markers, thousand separators and comma decimals are all tolerated.
// Unreadable cells count as zero. Values round half up to cents.
func ParseMoney(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	s = moneyJunk.ReplaceAllString(s, "")
	switch s {
	case "", "-", ".", "-.":
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Round(2).Float64()
	return f
}

// normalizeColumn lowercases a header cell and squashes every run of
// non-alphanumerics into a single underscore.
func normalizeColumn(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "→", "to")
	s = columnJunk.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// columnIndex maps normalized header names to their column position.
// The first occurrence of a repeated name wins.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeColumn(h)
		if key == "" {
			continue
		}
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	return idx
}

func pick(idx map[string]int, aliases []string) int {
	for _, a := range aliases {
		if i, ok := idx[a]; ok {
			return i
		}
	}
	return -1
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// isHeaderEcho reports whether a data row repeats the header, which
// happens when several sheet tabs are pasted into one export.
func isHeaderEcho(header, rec []string) bool {
	matches := 0
	for i, h := range header {
		hv := strings.ToLower(strings.TrimSpace(h))
		if hv == "" {
			continue
		}
		if strings.ToLower(cell(rec, i)) == hv {
			matches++
		}
	}
	return matches >= max(2, len(header)/2)
}

// isTotalsRow spots summary rows that sheets append under the data.
func isTotalsRow(label string) bool {
	t := strings.ToLower(strings.TrimSpace(label))
	return strings.HasPrefix(t, "total") || t == "tot" || t == "sum" || t == "grand total"
}

func parseDay(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return engine.Day(t), true
		}
	}
	return time.Time{}, false
}

// parseStatus maps free-form sheet status cells onto campaign status.
// Unknown and empty cells count as active.
func parseStatus(raw string) domain.Status {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(t, "paused") || t == "pause" || t == "off" || t == "hold":
		return domain.StatusPaused
	case strings.Contains(t, "stopped") || t == "stop" || t == "ended" || t == "completed":
		return domain.StatusStopped
	default:
		return domain.StatusActive
	}
}

// customerFromGroup takes the first segment of a group path such as
// "Acme Robotics / Fleet / Q4 Awareness".
func customerFromGroup(group string) string {
	parts := groupSeparators.Split(group, -1)
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0])
}

// inferChannel guesses the ad platform from the combined group and
// campaign text.
func inferChannel(text string) string {
	t := strings.ToLower(text)
	ch := domain.ChannelOther
	for _, m := range channelMarkers {
		for _, w := range m.words {
			if strings.Contains(t, w) {
				ch = m.channel
				break
			}
		}
	}
	return ch
}
