package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"go-forecast/pkg/valueconv"
)

// Timestamp is an instant with its offset normalised to UTC.
type Timestamp struct {
	value time.Time
}

// Postgres keeps microseconds, so the wrapper never holds more precision than
// the database can give back.
var timestampConverter = valueconv.New(
	func(ts Timestamp) time.Time { return ts.value },
	TimestampFrom,
	valueconv.MappingHints{DataType: "time"},
)

// TimestampFrom wraps t in UTC, truncated to microseconds.
func TimestampFrom(t time.Time) Timestamp {
	return Timestamp{value: t.UTC().Truncate(time.Microsecond)}
}

// Now returns the current instant.
func Now() Timestamp {
	return TimestampFrom(time.Now())
}

func (ts Timestamp) Time() time.Time {
	return ts.value
}

func (ts Timestamp) Before(other Timestamp) bool {
	return ts.value.Before(other.value)
}

func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.value.Equal(other.value)
}

func (ts Timestamp) Value() (driver.Value, error) {
	return timestampConverter.Value(ts)
}

func (ts *Timestamp) Scan(src any) error {
	v, err := timestampConverter.Scan(src)
	if err != nil {
		return err
	}
	*ts = v
	return nil
}

func (ts Timestamp) GormDataType() string {
	return timestampConverter.Hints().DataType
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.value.Format(time.RFC3339Nano))
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return err
	}
	*ts = TimestampFrom(t)
	return nil
}

func (ts Timestamp) String() string {
	return ts.value.Format(time.RFC3339)
}
