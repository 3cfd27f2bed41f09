package appointment

import (
	"sort"

	"github.com/medsched/hospital-scheduler/internal/httperr"
	"github.com/medsched/hospital-scheduler/internal/models"
)

// ===============================
// Date Ranges
// ===============================

// Ranges compare calendar-date strings (YYYY-MM-DD), which order
// lexically; "today" is whatever the caller evaluates it to be.

type DateRange string

const (
	RangeAll      DateRange = "all"
	RangeToday    DateRange = "today"
	RangeUpcoming DateRange = "upcoming"
	RangePast     DateRange = "past"
)

func ParseDateRange(s string) (DateRange, error) {
	switch DateRange(s) {
	case RangeAll, RangeToday, RangeUpcoming, RangePast:
		return DateRange(s), nil
	case "":
		return RangeAll, nil
	}
	return "", httperr.ErrBusiness("invalid_date_range")
}

func (r DateRange) Matches(date, today string) bool {
	switch r {
	case RangeToday:
		return date == today
	case RangeUpcoming:
		// Inclusive: today's appointments count as upcoming.
		return date >= today
	case RangePast:
		return date < today
	}
	return true
}

// ===============================
// Filter
// ===============================

type Filter struct {
	Status   string // canonical storage status, or "" for all
	Range    DateRange
	Hospital string // "" = unrestricted
	Clinic   string // "" = unrestricted
}

// Matches is the in-memory mirror of the SQL predicates built by the
// gorm repository; the fakes in tests share it.
func (f Filter) Matches(ap *models.Appointment, today string) bool {
	if f.Status != "" && ap.Status != f.Status {
		return false
	}
	if !f.Range.Matches(ap.Date, today) {
		return false
	}
	if f.Hospital != "" && ap.Hospital != f.Hospital {
		return false
	}
	if f.Clinic != "" && ap.Clinic != f.Clinic {
		return false
	}
	return true
}

// Sort orders appointments date descending, then time ascending.
func Sort(aps []models.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		if aps[i].Date != aps[j].Date {
			return aps[i].Date > aps[j].Date
		}
		return aps[i].Time < aps[j].Time
	})
}
