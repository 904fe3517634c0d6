package resource_test

import (
	"fmt"

	"go-forecast/pkg/resource"
)

func ExampleLoad() {
	_ = resource.Load([]byte(`
app:
  forecast-api:
    base-url: ${EXAMPLE_UNSET_FORECAST_URL:https://localhost:7033}
    read-timeout: 30s
  sample:
    cities:
      - London
      - Paris
  archive:
    history-limit: 20
`))

	fmt.Println(resource.GetString("app.forecast-api.base-url"))
	fmt.Println(resource.GetDuration("app.forecast-api.read-timeout"))
	fmt.Println(resource.GetStringSlice("app.sample.cities"))
	fmt.Println(resource.GetInt("app.archive.history-limit"))
	fmt.Println(resource.GetStringOrDefault("app.archive.driver", "gorm"))

	// Output:
	// https://localhost:7033
	// 30s
	// [London Paris]
	// 20
	// gorm
}
