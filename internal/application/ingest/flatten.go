package ingest

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/JHCss26/ukg-internal/internal/domain/workforce"
)

// Saved reports arrive as a generic tabular XML document: a result tree
// with an optional top-level header and a body of groups, each group
// optionally repeating its own column header and carrying zero or more
// data rows. The structs below are the explicit shape of that document;
// all field resolution happens by column label so that a reordered or
// truncated vendor layout degrades to nil fields instead of misaligned
// ones.
type reportDocument struct {
	Header *reportHeader `xml:"header"`
	Body   *reportBody   `xml:"body"`
	Result *reportResult `xml:"result"`
}

type reportResult struct {
	Header *reportHeader `xml:"header"`
	Body   *reportBody   `xml:"body"`
}

type reportHeader struct {
	Cols []reportCol `xml:"col"`
}

type reportBody struct {
	Groups []reportGroup `xml:"group"`
}

type reportGroup struct {
	Header *groupHeader `xml:"header"`
	Body   *groupBody   `xml:"body"`
}

type groupHeader struct {
	Cols groupHeaderCols `xml:"cols"`
	Data groupHeaderData `xml:"data"`
}

type groupHeaderCols struct {
	Cols []reportCol `xml:"col"`
}

type groupHeaderData struct {
	Col *groupDataCol `xml:"col"`
}

type reportCol struct {
	Label string `xml:"label,attr"`
}

type groupDataCol struct {
	Label string `xml:"label,attr"`
	Data  string `xml:"data"`
}

type groupBody struct {
	Rows []reportRowNode `xml:"row"`
}

type reportRowNode struct {
	Cols []cellNode `xml:"col"`
}

type cellNode struct {
	Value string `xml:",chardata"`
}

// departmentLabel marks the per-group header data cell that carries the
// group's department.
const departmentLabel = "default department"

// flattenReport converts a saved report document into flat rows in
// document order.
func flattenReport(doc []byte) ([]workforce.ReportRow, error) {
	var parsed reportDocument
	if err := xml.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("parse report xml: %w", err)
	}

	header, body := parsed.Header, parsed.Body
	if parsed.Result != nil {
		header, body = parsed.Result.Header, parsed.Result.Body
	}

	var groups []reportGroup
	if body != nil {
		groups = body.Groups
	}

	columns := resolveColumns(header, groups)
	index := make(map[string]int, len(columns))
	for i, label := range columns {
		if _, exists := index[label]; !exists {
			index[label] = i
		}
	}

	var rows []workforce.ReportRow
	for _, group := range groups {
		department := groupDepartment(group)
		if group.Body == nil {
			continue
		}
		for _, row := range group.Body.Rows {
			rows = append(rows, buildRow(row.Cols, index, department))
		}
	}
	return rows, nil
}

// resolveColumns picks column labels in fallback order: the top-level
// header, then the first group's header, then synthesized positional
// labels sized to the first row.
func resolveColumns(header *reportHeader, groups []reportGroup) []string {
	if header != nil {
		if labels := colLabels(header.Cols); len(labels) > 0 {
			return labels
		}
	}

	if len(groups) > 0 && groups[0].Header != nil {
		if labels := colLabels(groups[0].Header.Cols.Cols); len(labels) > 0 {
			return labels
		}
	}

	var width int
	if len(groups) > 0 && groups[0].Body != nil && len(groups[0].Body.Rows) > 0 {
		width = len(groups[0].Body.Rows[0].Cols)
	}
	labels := make([]string, width)
	for i := range labels {
		labels[i] = "col" + strconv.Itoa(i+1)
	}
	return labels
}

func colLabels(cols []reportCol) []string {
	labels := make([]string, 0, len(cols))
	for _, col := range cols {
		if label := strings.TrimSpace(col.Label); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

func groupDepartment(group reportGroup) *string {
	if group.Header == nil || group.Header.Data.Col == nil {
		return nil
	}
	col := group.Header.Data.Col
	if !strings.EqualFold(strings.TrimSpace(col.Label), departmentLabel) {
		return nil
	}
	return cleanCell(col.Data)
}

type rowReader struct {
	cells []cellNode
	index map[string]int
}

func (r rowReader) text(label string) *string {
	i, ok := r.index[label]
	if !ok || i < 0 || i >= len(r.cells) {
		return nil
	}
	return cleanCell(r.cells[i].Value)
}

func (r rowReader) number(label string) *float64 {
	text := r.text(label)
	if text == nil {
		return nil
	}
	n, err := strconv.ParseFloat(*text, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return nil
	}
	return &n
}

func buildRow(cells []cellNode, index map[string]int, department *string) workforce.ReportRow {
	r := rowReader{cells: cells, index: index}
	return workforce.ReportRow{
		Department: department,
		EmployeeID: r.text("Employee ID"),
		FirstName:  r.text("First Name"),
		Surname:    r.text("Surname"),
		// currency fields keep the vendor's formatted text
		HourlyPay:              r.text("Hourly Pay"),
		ScheduledTimeHours:     r.number("Scheduled Time Hours"),
		AnnualLeaveDaysDays:    r.number("Annual Leave Days Days"),
		BasicHours:             r.number("Basic Hours"),
		BasicRateTotal:         r.number("Basic Rate Total"),
		Overtime1Hours:         r.number("Overtime 1 (Hours)"),
		Overtime1Rate:          r.number("Overtime 1 (Rate)"),
		Overtime1Total:         r.number("Overtime 1 Total"),
		Overtime2Hours:         r.number("Overtime 2 (Hours)"),
		Overtime2Rate:          r.number("Overtime 2 (Rate)"),
		Overtime2Total:         r.number("Overtime 2 Total"),
		WorkVsScheduledHours:   r.number("_Work vs Scheduled Hours"),
		SickHours:              r.number("Sick Hours"),
		UnauthorisedLeaveHours: r.number("Unauthorised Leave Hours"),
		HolidayPay:             r.number("Holiday Pay"),
		HolidayRate:            r.text("Holiday Rate"),
		HolidayPayTotal:        r.number("Holiday Pay Total"),
		SubTotal:               r.number("Sub Total"),
		Comments:               r.text("Comments"),
	}
}

// cleanCell trims a cell and normalizes the vendor's empty placeholders
// ("", "-", "—") to nil.
func cleanCell(value string) *string {
	s := strings.TrimSpace(value)
	if s == "" || s == "-" || s == "—" {
		return nil
	}
	return &s
}
