// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package identity

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Batch derives the identities of canonicals in parallel. Results are in
// input order. workers <= 0 uses one worker per CPU.
func Batch(ctx context.Context, namespace uuid.UUID, canonicals []string, workers int) ([]uuid.UUID, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ids := make([]uuid.UUID, len(canonicals))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, canonical := range canonicals {
		if err := egCtx.Err(); err != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			ids[i] = New(namespace, canonical)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
