package model

import "time"

// VacationStatus is the lifecycle state of a vacation record.
// The server owns the authoritative value; unknown values are carried as-is.
type VacationStatus string

const (
	StatusScheduled VacationStatus = "scheduled"
	StatusTaken     VacationStatus = "taken"
	StatusCancelled VacationStatus = "cancelled"
)

// IsKnown reports whether the status is one of the states this client knows about
func (s VacationStatus) IsKnown() bool {
	switch s {
	case StatusScheduled, StatusTaken, StatusCancelled:
		return true
	}
	return false
}

// VacationRecord is one employee's vacation entitlement, schedule and pay.
// Field order matches the wire order of the vacations API.
type VacationRecord struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`

	// Period in which the leave was earned, and the deadline for granting it
	AcquisitionPeriodStart Date `json:"acquisition_period_start"`
	AcquisitionPeriodEnd   Date `json:"acquisition_period_end"`
	ConcessionPeriodEnd    Date `json:"concession_period_end"`

	DaysEntitled int `json:"days_entitled"`
	DaysTaken    int `json:"days_taken"`
	DaysSold     int `json:"days_sold"`

	StartDate  Date `json:"start_date"`
	EndDate    Date `json:"end_date"`
	ReturnDate Date `json:"return_date"`

	VacationPay   Money `json:"vacation_pay"`
	VacationBonus Money `json:"vacation_bonus"`
	SoldDaysPay   Money `json:"sold_days_pay"`
	TotalPay      Money `json:"total_pay"`

	Status       VacationStatus `json:"status"`
	Observations string         `json:"observations"`
}

// ExpectedTotalPay is vacation_pay + vacation_bonus + sold_days_pay
func (v VacationRecord) ExpectedTotalPay() Money {
	return v.VacationPay.Add(v.VacationBonus).Add(v.SoldDaysPay)
}

// PayTotalMatches reports whether total_pay equals the sum of its parts.
// Nothing in the probe enforces this; servers are expected to.
func (v VacationRecord) PayTotalMatches() bool {
	return v.TotalPay.Equal(v.ExpectedTotalPay().Decimal)
}

// SampleVacation returns the fixed record the probe posts
func SampleVacation() VacationRecord {
	return VacationRecord{
		EmployeeID:             "1768620904508",
		EmployeeName:           "Angelina Ferreira",
		AcquisitionPeriodStart: NewDate(2026, time.January, 17),
		AcquisitionPeriodEnd:   NewDate(2027, time.January, 16),
		ConcessionPeriodEnd:    NewDate(2028, time.January, 16),
		DaysEntitled:           30,
		DaysTaken:              15,
		DaysSold:               0,
		StartDate:              NewDate(2026, time.February, 1),
		EndDate:                NewDate(2026, time.February, 15),
		ReturnDate:             NewDate(2026, time.February, 16),
		VacationPay:            MustMoney("5500"),
		VacationBonus:          MustMoney("1833.33"),
		SoldDaysPay:            MustMoney("0"),
		TotalPay:               MustMoney("7333.33"),
		Status:                 StatusScheduled,
		Observations:           "Teste",
	}
}
