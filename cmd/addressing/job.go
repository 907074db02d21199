package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	deliverycontext "addressing/internal/delivery/context"
	"addressing/internal/usecase"

	"github.com/pkg/errors"
)

// options are the command line switches of one run.
type options struct {
	BuildingID int64
	Clear      bool
	PlateID    int64
	Out        string
}

// job runs the addressing action selected by options once.
type job struct {
	opts          options
	logger        *slog.Logger
	addressingSvc usecase.AddressingUsecase
	plateSvc      usecase.PlateUsecase
	writeFile     func(name string, data []byte, perm os.FileMode) error
}

func newJob(opts options, logger *slog.Logger, addressingSvc usecase.AddressingUsecase, plateSvc usecase.PlateUsecase) *job {
	return &job{
		opts:          opts,
		logger:        logger,
		addressingSvc: addressingSvc,
		plateSvc:      plateSvc,
		writeFile:     os.WriteFile,
	}
}

func (j *job) run(ctx context.Context) error {
	ctx, logger := deliverycontext.Scoped(ctx, j.logger, deliverycontext.NewRequestID())

	if j.opts.PlateID > 0 {
		return j.renderPlate(ctx, logger)
	}

	if j.opts.Clear {
		var ids []int64
		if j.opts.BuildingID > 0 {
			ids = []int64{j.opts.BuildingID}
		}
		if _, err := j.addressingSvc.ClearAddresses(ctx, ids); err != nil {
			return err
		}
	}

	if j.opts.BuildingID > 0 {
		result, err := j.addressingSvc.AddressBuilding(ctx, j.opts.BuildingID)
		if err != nil {
			return err
		}

		logger.InfoContext(ctx, "Building addressed",
			slog.Int64("building_id", result.BuildingID),
			slog.String("association", result.Association.String()),
			slog.String("house_no", result.HouseNo),
			slog.String("previous_house_no", result.PreviousHouseNo),
			slog.String("direction", result.Direction.String()),
			slog.String("road_ids", result.RoadIDs),
			slog.Bool("needs_review", result.NeedsReview),
		)

		return nil
	}

	report, err := j.addressingSvc.AddressAll(ctx)
	if err != nil {
		return err
	}
	for _, failure := range report.Failures {
		logger.DebugContext(ctx, "Building not addressed",
			slog.Int64("building_id", failure.BuildingID),
			slog.Bool("skipped", failure.Skipped),
			slog.String("reason", failure.Reason),
		)
	}

	return nil
}

func (j *job) renderPlate(ctx context.Context, logger *slog.Logger) error {
	png, err := j.plateSvc.RenderPlate(ctx, j.opts.PlateID)
	if err != nil {
		return err
	}

	out := j.opts.Out
	if out == "" {
		out = fmt.Sprintf("plate-%d.png", j.opts.PlateID)
	}
	if err := j.writeFile(out, png, 0o644); err != nil {
		return errors.Wrapf(err, "write plate to %s", out)
	}

	logger.InfoContext(ctx, "Plate written",
		slog.Int64("building_id", j.opts.PlateID),
		slog.String("out", out),
		slog.Int("bytes", len(png)),
	)

	return nil
}
