package get_venue_schedule

import (
	"context"

	getVenueSchedule "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_venue_schedule"
)

type GetVenueScheduleUseCase interface {
	Execute(ctx context.Context, req *getVenueSchedule.Request) (*getVenueSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
