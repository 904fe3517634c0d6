package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"go-forecast/pkg/valueconv"
)

// HistoricForecastID identifies a forecast that was issued in the past.
type HistoricForecastID struct {
	value uuid.UUID
}

// uuid.UUID writes its canonical string, so the same column works on postgres and sqlite.
// Reading goes through uuid.UUID.Scan, which rejects malformed text.
var historicForecastIDConverter = valueconv.New(
	func(id HistoricForecastID) uuid.UUID { return id.value },
	func(u uuid.UUID) HistoricForecastID { return HistoricForecastID{value: u} },
	valueconv.MappingHints{DataType: "string", Size: 36},
)

// NewHistoricForecastID wraps a freshly generated UUID.
func NewHistoricForecastID() HistoricForecastID {
	return HistoricForecastID{value: uuid.New()}
}

// HistoricForecastIDFrom wraps an existing UUID.
func HistoricForecastIDFrom(id uuid.UUID) HistoricForecastID {
	return HistoricForecastID{value: id}
}

// ParseHistoricForecastID parses the textual form of a historic forecast id.
func ParseHistoricForecastID(s string) (HistoricForecastID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return HistoricForecastID{}, fmt.Errorf("invalid historic forecast id '%s': %w", s, err)
	}
	return HistoricForecastID{value: id}, nil
}

func (id HistoricForecastID) UUID() uuid.UUID {
	return id.value
}

func (id HistoricForecastID) Value() (driver.Value, error) {
	return historicForecastIDConverter.Value(id)
}

func (id *HistoricForecastID) Scan(src any) error {
	parsed, err := historicForecastIDConverter.Scan(src)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id HistoricForecastID) GormDataType() string {
	return historicForecastIDConverter.Hints().DataType
}

func (id HistoricForecastID) MarshalJSON() ([]byte, error) {
	return json.Marshal(historicForecastIDConverter.ToProvider(id))
}

func (id *HistoricForecastID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseHistoricForecastID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id HistoricForecastID) String() string {
	return id.value.String()
}
