package console

import (
	"context"
	"fmt"
	"io"

	"go-forecast/internal/domain/entity"
	"go-forecast/internal/domain/usecase/forecast"
	"go-forecast/pkg/msg"
)

// PrintHistory writes the newest archived forecasts of city, one per line.
func PrintHistory(ctx context.Context, useCase forecast.UseCase, out io.Writer, city entity.City, limit int) error {
	history, err := useCase.History(ctx, city, limit)
	if err != nil {
		return err
	}

	if len(history) == 0 {
		fmt.Fprintln(out, msg.GetMessage("archive.empty", city))
		return nil
	}

	for _, a := range history {
		fmt.Fprintln(out, msg.GetMessage("archive.line",
			a.ArchivedAt, a.ID, a.City, a.TemperatureC.Int(), a.TemperatureF.Int(), a.Summary))
	}
	return nil
}
