package model

import (
	"regexp"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleVacation_SerializesEveryField(t *testing.T) {
	data, err := json.Marshal(SampleVacation())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	expected := []string{
		"employee_id", "employee_name",
		"acquisition_period_start", "acquisition_period_end", "concession_period_end",
		"days_entitled", "days_taken", "days_sold",
		"start_date", "end_date", "return_date",
		"vacation_pay", "vacation_bonus", "sold_days_pay", "total_pay",
		"status", "observations",
	}
	assert.Len(t, fields, len(expected))
	for _, key := range expected {
		assert.Contains(t, fields, key)
	}
}

func TestSampleVacation_DateFieldsAreISODates(t *testing.T) {
	data, err := json.Marshal(SampleVacation())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	datePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateFields := []string{
		"acquisition_period_start", "acquisition_period_end", "concession_period_end",
		"start_date", "end_date", "return_date",
	}
	for _, key := range dateFields {
		value, ok := fields[key].(string)
		require.True(t, ok, "%s should be a string", key)
		assert.Regexp(t, datePattern, value, key)
	}
	assert.Equal(t, "2026-02-01", fields["start_date"])
	assert.Equal(t, "2026-02-16", fields["return_date"])
}

func TestSampleVacation_DayFieldsAreNonNegativeIntegers(t *testing.T) {
	data, err := json.Marshal(SampleVacation())
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))

	integerPattern := regexp.MustCompile(`^\d+$`)
	for _, key := range []string{"days_entitled", "days_taken", "days_sold"} {
		assert.Regexp(t, integerPattern, string(fields[key]), key)
	}
	assert.Equal(t, "30", string(fields["days_entitled"]))
	assert.Equal(t, "15", string(fields["days_taken"]))
	assert.Equal(t, "0", string(fields["days_sold"]))
}

func TestSampleVacation_MoneyIsUnquoted(t *testing.T) {
	data, err := json.Marshal(SampleVacation())
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Equal(t, "5500", string(fields["vacation_pay"]))
	assert.Equal(t, "1833.33", string(fields["vacation_bonus"]))
	assert.Equal(t, "0", string(fields["sold_days_pay"]))
	assert.Equal(t, "7333.33", string(fields["total_pay"]))
}

func TestSampleVacation_ScheduleIsOrdered(t *testing.T) {
	v := SampleVacation()

	assert.False(t, v.StartDate.After(v.EndDate.Time))
	assert.True(t, v.ReturnDate.After(v.EndDate.Time))
	assert.LessOrEqual(t, v.DaysTaken, v.DaysEntitled)
	assert.Equal(t, StatusScheduled, v.Status)
}

func TestPayTotalMatches(t *testing.T) {
	tests := []struct {
		name     string
		pay      string
		bonus    string
		sold     string
		total    string
		expected bool
	}{
		{"sample amounts", "5500", "1833.33", "0", "7333.33", true},
		{"with sold days", "3000", "1000", "1500", "5500", true},
		{"total off by a cent", "5500", "1833.33", "0", "7333.34", false},
		{"all zero", "0", "0", "0", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := VacationRecord{
				VacationPay:   MustMoney(tt.pay),
				VacationBonus: MustMoney(tt.bonus),
				SoldDaysPay:   MustMoney(tt.sold),
				TotalPay:      MustMoney(tt.total),
			}
			assert.Equal(t, tt.expected, v.PayTotalMatches())
		})
	}
}

func TestSampleVacation_TotalPay(t *testing.T) {
	v := SampleVacation()

	assert.True(t, v.PayTotalMatches())
	assert.Equal(t, "7333.33", v.ExpectedTotalPay().String())
}

func TestVacationRecord_RoundTrip(t *testing.T) {
	original := SampleVacation()

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded VacationRecord
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original.EmployeeID, decoded.EmployeeID)
	assert.Equal(t, original.StartDate.String(), decoded.StartDate.String())
	assert.True(t, original.VacationBonus.Equal(decoded.VacationBonus.Decimal))
	assert.Equal(t, original.Status, decoded.Status)
}

func TestMoney_UnmarshalQuotedString(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"1833.33"`), &m))
	assert.Equal(t, "1833.33", m.String())
}

func TestNewMoney_Invalid(t *testing.T) {
	_, err := NewMoney("12,50")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2028-01-16")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2028, time.January, 16), d)

	_, err = ParseDate("16/01/2028")
	assert.Error(t, err)
}

func TestDate_NullIsZero(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestVacationStatus_IsKnown(t *testing.T) {
	assert.True(t, StatusScheduled.IsKnown())
	assert.True(t, StatusTaken.IsKnown())
	assert.True(t, StatusCancelled.IsKnown())
	assert.False(t, VacationStatus("approved").IsKnown())
}
