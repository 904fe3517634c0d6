package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	pkghttp "go-forecast/pkg/http"
)

type reading struct {
	City         string `json:"city"`
	TemperatureC int    `json:"temperatureC"`
}

type apiProblem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
}

func ExampleRequest_Execute() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/readings/London" {
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title":"Not Found","status":404}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"city":"London","temperatureC":8}]`))
	}))
	defer server.Close()

	client := pkghttp.NewHttpClient(server.URL, pkghttp.ClientOptions{})

	var readings []reading
	var problem apiProblem
	_, _, status, err := client.Request().
		WithContext(context.Background()).
		WithPath("/readings/{city}").
		WithPathParams(map[string]string{"city": "London"}).
		WithSuccessResp(&readings).
		WithErrorResp(&problem).
		Execute()
	fmt.Println(status, err, readings)

	_, _, status, _ = client.Request().
		WithPath("/readings/{city}").
		WithPathParams(map[string]string{"city": "Peckham"}).
		WithSuccessResp(&readings).
		WithErrorResp(&problem).
		Execute()
	fmt.Println(status, problem.Title)

	// Output:
	// 200 <nil> [{London 8}]
	// 404 Not Found
}
