package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/orbit-suite/orbit/pkg/log"
	"github.com/orbit-suite/orbit/pkg/worker"
)

func MustRun(ctx context.Context, logger log.Logger, jobs ...worker.ErrorJob) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

func Run(ctx context.Context, logger log.Logger, jobs ...worker.ErrorJob) error {
	errCompleted := errors.New("job completed")
	loggingAdapter := func(job worker.ErrorJob) worker.ErrorJob {
		return func(ctx context.Context) error {
			err := job(ctx)
			if err == nil || errors.Is(err, ctx.Err()) {
				return errCompleted
			}

			logger.WithError(err).Error(ctx, "running job completed with error")
			return err
		}
	}

	group := worker.NewFailFastGroup(ctx)
	for _, job := range jobs {
		group.Do(loggingAdapter(job))
	}

	err := group.Wait()
	if errors.Is(err, errCompleted) {
		return nil
	}

	return err
}
