package get_day_blocks

import (
	"context"

	dayBlocks "github.com/rheareserve/booking-service/internal/usecase/get_day_blocks"
)

type DayBlocksUseCase interface {
	Execute(ctx context.Context, req *dayBlocks.Request) (*dayBlocks.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
