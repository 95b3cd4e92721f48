// Package snowflake decodes Discord snowflake identifiers
package snowflake

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// EpochMillis is the Discord epoch, 2015-01-01T00:00:00Z, in unix milliseconds
const EpochMillis int64 = 1420070400000

// futureSlack tolerates clock drift between us and the id issuer
const futureSlack = 24 * time.Hour

var pattern = regexp.MustCompile(`^[0-9]{15,20}$`)

// InvalidError reports a value that is not a usable snowflake
type InvalidError struct {
	Value  string
	Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("Invalid snowflake: %s %s", e.Value, e.Reason)
}

// ID is a decoded snowflake
type ID uint64

// Time is the creation instant encoded in the id
func (id ID) Time() time.Time {
	ms := int64(uint64(id)>>22) + EpochMillis
	return time.UnixMilli(ms).UTC()
}

func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Parse validates s against now and returns the id
func Parse(s string, now time.Time) (ID, error) {
	if !pattern.MatchString(s) {
		return 0, &InvalidError{Value: s, Reason: "is not a valid snowflake"}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &InvalidError{Value: s, Reason: "is not a valid snowflake"}
	}
	id := ID(v)
	if ts := id.Time(); ts.After(now.Add(futureSlack)) {
		return 0, &InvalidError{Value: s, Reason: fmt.Sprintf("(%s) is in the future", FormatTime(ts))}
	}
	return id, nil
}

// FormatTime renders t like "2015-01-01 00:00:00.123000+00:00", dropping a zero fraction
func FormatTime(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/1000 == 0 {
		return t.Format("2006-01-02 15:04:05-07:00")
	}
	return t.Format("2006-01-02 15:04:05.000000-07:00")
}

// Since renders the distance from t to now in words
func Since(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Line is the markdown description of one id
func Line(id ID, now time.Time) string {
	ts := id.Time()
	return fmt.Sprintf("**%s**\nCreated at %s (%s).", id, FormatTime(ts), Since(ts, now))
}

// Heading is the author line for n ids
func Heading(n int) string {
	if n == 1 {
		return "Snowflake"
	}
	return "Snowflakes"
}

// IconURL is the snowflake emoji shown beside the heading
const IconURL = "https://github.com/twitter/twemoji/blob/master/assets/72x72/2744.png?raw=true"
