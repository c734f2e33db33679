package screens

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Agent is a sub-agent of the agency as shown on booking lists
type Agent struct {
	SL   string
	Name string
}

var agents = []Agent{
	{SL: "AG-1001", Name: "Skyline Travels"},
	{SL: "AG-1002", Name: "Blue Lagoon Tours"},
	{SL: "AG-1003", Name: "Northstar Holidays"},
	{SL: "AG-1004", Name: "Desert Rose Trips"},
	{SL: "AG-1005", Name: "Harbour Point Travel"},
	{SL: "AG-1006", Name: "Green Valley Getaways"},
}

// PickAgent returns a random agent
func PickAgent(rng *rand.Rand) Agent {
	return agents[rng.IntN(len(agents))]
}

// Pick returns a random element of values
func Pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.IntN(len(values))]
}

// DaysBefore returns a date within the given number of days before now
func DaysBefore(rng *rand.Rand, now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -rng.IntN(days+1))
}

// DaysAfter returns a date within the given number of days after start
func DaysAfter(rng *rand.Rand, start time.Time, days int) time.Time {
	return start.AddDate(0, 0, rng.IntN(days+1))
}

// Reference builds a booking reference such as "BUS-000123"
func Reference(prefix string, i int) string {
	return fmt.Sprintf("%s-%06d", prefix, i+1)
}

// PNR builds a 6 character alphanumeric record locator
func PNR(rng *rand.Rand) string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	out := make([]byte, 6)
	for i := range out {
		out[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return string(out)
}

// Amount returns a price rounded to two decimals
func Amount(rng *rand.Rand, lowest, highest float64) float64 {
	v := lowest + rng.Float64()*(highest-lowest)
	return float64(int(v*100)) / 100
}

// Date formats a time as YYYY-MM-DD
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// Money formats an amount for tables
func Money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
