package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timeclock/internal/parser"
)

type periodKind int

const (
	periodDay periodKind = iota
	periodWeek
	periodMonth
	periodYear
)

var periodFlagNames = map[periodKind]string{
	periodDay:   "day",
	periodWeek:  "week",
	periodMonth: "month",
	periodYear:  "year",
}

// period is the window picked with --day, --week, --month or --year.
type period struct {
	kind  periodKind
	day   parser.Day
	week  parser.Week
	month parser.Month
	year  int
}

func (p period) String() string {
	switch p.kind {
	case periodDay:
		return p.day.String()
	case periodWeek:
		return p.week.String()
	case periodMonth:
		return p.month.String()
	default:
		return fmt.Sprintf("%04d", p.year)
	}
}

// addPeriodFlags registers the given period flags as mutually exclusive.
func addPeriodFlags(cmd *cobra.Command, kinds ...periodKind) {
	usage := map[periodKind]string{
		periodDay:   "Day: yyyy-mm-dd, dd/mm/yyyy, today, yesterday",
		periodWeek:  "ISO week: yyyy-Www, this-week, last-week",
		periodMonth: "Month: yyyy-mm, this-month, last-month",
		periodYear:  "Year: yyyy, this-year, last-year",
	}

	var names []string
	for _, k := range kinds {
		name := periodFlagNames[k]
		cmd.Flags().String(name, "", usage[k])
		names = append(names, name)
	}
	if len(names) > 1 {
		cmd.MarkFlagsMutuallyExclusive(names...)
	}
}

// readPeriod returns the period chosen on the command line, or the current
// period of kind fallback when no period flag was set.
func readPeriod(cmd *cobra.Command, fallback periodKind) (period, error) {
	kind, input := fallback, ""
	for k, name := range periodFlagNames {
		f := cmd.Flags().Lookup(name)
		if f != nil && f.Changed {
			kind, input = k, f.Value.String()
			break
		}
	}

	t := now()
	p := period{kind: kind}
	var err error
	switch kind {
	case periodDay:
		p.day, err = parser.ParseDay(input, t)
	case periodWeek:
		p.week, err = parser.ParseWeek(input, t)
	case periodMonth:
		p.month, err = parser.ParseMonth(input, t)
	case periodYear:
		p.year, err = parser.ParseYear(input, t)
	}
	return p, err
}
