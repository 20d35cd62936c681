package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/simp-lee/storefront/internal/domain"
)

// Ingest drains the source returned by open, dispatching every record in
// order and tallying the outcome. Parse and dispatch failures are logged and
// counted, never returned. A source that fails to open or read yields a
// configuration error. Otherwise the source is always drained: ctx only
// carries log attributes and is handed to dispatch, and its cancellation
// does not stop the run.
func Ingest[T any](ctx context.Context, open OpenFunc[T], dispatch DispatchFunc[T]) (Result, error) {
	src, err := open()
	if err != nil {
		slog.ErrorContext(ctx, "failed to open record source", slog.Any("error", err))
		return Result{}, domain.ConfigError(err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			slog.WarnContext(ctx, "failed to close record source", slog.Any("error", cerr))
		}
	}()

	var res Result
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		}

		var outcome Outcome
		var recErr *RecordError
		switch {
		case errors.As(err, &recErr):
			outcome = OutcomeParseError
			slog.WarnContext(ctx, "skipping unparseable record",
				slog.Int("line", recErr.Line),
				slog.Any("error", recErr.Err),
			)
		case err != nil:
			slog.ErrorContext(ctx, "record source failed", slog.Any("error", err))
			return res, domain.ConfigError(err)
		default:
			outcome = dispatchOne(ctx, rec, dispatch)
		}
		res.Tally(outcome)
	}
}

func dispatchOne[T any](ctx context.Context, rec T, dispatch DispatchFunc[T]) Outcome {
	if err := dispatch(ctx, rec); err != nil {
		slog.WarnContext(ctx, "failed to store record", slog.Any("error", err))
		return OutcomeDispatchError
	}
	return OutcomeOK
}
