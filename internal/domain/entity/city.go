package entity

import (
	"database/sql/driver"
	"encoding/json"

	"go-forecast/pkg/valueconv"
)

// City is the name of a city a forecast is requested for.
type City struct {
	value string
}

var cityConverter = valueconv.New(
	func(c City) string { return c.value },
	func(s string) City { return City{value: s} },
	valueconv.MappingHints{DataType: "string", Size: 100},
)

// CityFrom wraps a city name.
func CityFrom(name string) City {
	return City{value: name}
}

func (c City) Value() (driver.Value, error) {
	return cityConverter.Value(c)
}

func (c *City) Scan(src any) error {
	city, err := cityConverter.Scan(src)
	if err != nil {
		return err
	}
	*c = city
	return nil
}

func (c City) GormDataType() string {
	return cityConverter.Hints().DataType
}

func (c City) MarshalJSON() ([]byte, error) {
	return json.Marshal(cityConverter.ToProvider(c))
}

func (c *City) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*c = cityConverter.FromProvider(name)
	return nil
}

func (c City) String() string {
	return c.value
}

// IsZero reports whether the city wraps an empty name.
func (c City) IsZero() bool {
	return c.value == ""
}
