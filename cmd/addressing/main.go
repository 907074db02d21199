package main

import (
	"context"
	"flag"
	"log/slog"

	"addressing/config"
	logs "addressing/internal/infra/log"
	"addressing/internal/infra/persistence/postgres"
	"addressing/internal/infra/pubsub"
	"addressing/internal/infra/qrcode"
	"addressing/internal/infra/registry"
	"addressing/internal/infra/spatial"
	"addressing/internal/usecase"
	"addressing/internal/usecase/impl"

	"go.uber.org/fx"
)

type runJobParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Options       options
	Logger        *slog.Logger
	AddressingSvc usecase.AddressingUsecase
	PlateSvc      usecase.PlateUsecase
}

func main() {
	var opts options
	flag.Int64Var(&opts.BuildingID, "building", 0, "Address a single building by id; the full batch runs when omitted")
	flag.BoolVar(&opts.Clear, "clear", false, "Clear addresses before addressing (all buildings, or -building only)")
	flag.Int64Var(&opts.PlateID, "plate", 0, "Render the QR plate of an addressed building")
	flag.StringVar(&opts.Out, "out", "", "Output file for -plate (default plate-<id>.png)")
	flag.Parse()

	fx.New(
		fx.Supply(opts),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			runJob,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		registry.Module,
		spatial.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewBuildingRepository,
			postgres.NewRoadRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			qrcode.NewPlateService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressingService,
			impl.NewPlateService,
		),
	)
}

// runJob starts the job once the app is up and stops the app when it ends.
// An interrupt cancels the job between buildings.
func runJob(params runJobParams) {
	j := newJob(params.Options, params.Logger, params.AddressingSvc, params.PlateSvc)

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)

				exitCode := 0
				if err := j.run(runCtx); err != nil {
					params.Logger.Error("Addressing run failed", slog.Any("error", err))
					exitCode = 1
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()

			select {
			case <-done:
			case <-ctx.Done():
			}

			return nil
		},
	})
}
