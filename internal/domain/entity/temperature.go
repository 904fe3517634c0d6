package entity

import (
	"database/sql/driver"
	"encoding/json"
	"strconv"

	"go-forecast/pkg/valueconv"
)

// Centigrade is a temperature in degrees Celsius.
type Centigrade struct {
	value int
}

// Fahrenheit is a temperature in degrees Fahrenheit.
type Fahrenheit struct {
	value int
}

var (
	centigradeConverter = valueconv.New(
		func(c Centigrade) int64 { return int64(c.value) },
		func(i int64) Centigrade { return Centigrade{value: int(i)} },
		valueconv.MappingHints{DataType: "int"},
	)
	fahrenheitConverter = valueconv.New(
		func(f Fahrenheit) int64 { return int64(f.value) },
		func(i int64) Fahrenheit { return Fahrenheit{value: int(i)} },
		valueconv.MappingHints{DataType: "int"},
	)
)

func CentigradeFrom(degrees int) Centigrade {
	return Centigrade{value: degrees}
}

func FahrenheitFrom(degrees int) Fahrenheit {
	return Fahrenheit{value: degrees}
}

// Int returns the wrapped degrees.
func (c Centigrade) Int() int {
	return c.value
}

// Fahrenheit converts using the forecast API's own formula so derived values
// match what the server returns.
func (c Centigrade) Fahrenheit() Fahrenheit {
	return Fahrenheit{value: 32 + int(float64(c.value)/0.5556)}
}

func (c Centigrade) Value() (driver.Value, error) {
	return centigradeConverter.Value(c)
}

func (c *Centigrade) Scan(src any) error {
	v, err := centigradeConverter.Scan(src)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Centigrade) GormDataType() string {
	return centigradeConverter.Hints().DataType
}

func (c Centigrade) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

func (c *Centigrade) UnmarshalJSON(data []byte) error {
	var degrees int
	if err := json.Unmarshal(data, &degrees); err != nil {
		return err
	}
	*c = CentigradeFrom(degrees)
	return nil
}

func (c Centigrade) String() string {
	return strconv.Itoa(c.value)
}

func (f Fahrenheit) Int() int {
	return f.value
}

func (f Fahrenheit) Value() (driver.Value, error) {
	return fahrenheitConverter.Value(f)
}

func (f *Fahrenheit) Scan(src any) error {
	v, err := fahrenheitConverter.Scan(src)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Fahrenheit) GormDataType() string {
	return fahrenheitConverter.Hints().DataType
}

func (f Fahrenheit) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.value)
}

func (f *Fahrenheit) UnmarshalJSON(data []byte) error {
	var degrees int
	if err := json.Unmarshal(data, &degrees); err != nil {
		return err
	}
	*f = FahrenheitFrom(degrees)
	return nil
}

func (f Fahrenheit) String() string {
	return strconv.Itoa(f.value)
}
