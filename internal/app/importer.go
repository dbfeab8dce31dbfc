package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jpp0ca/storybook-media/internal/domain"
)

// ImportMultimedia creates many catalog entries concurrently. Individual
// failures are reported per item and do not abort the batch.
func (s *Service) ImportMultimedia(ctx context.Context, items []domain.CreateMultimediaRequest, origin string) (*domain.ImportResult, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}

	s.logger.Info("[import] starting bulk import", "items", len(items), "workers", s.importWorkers)
	results := s.importParallel(ctx, items, origin)

	out := &domain.ImportResult{Total: len(items), Results: results}
	for i := range results {
		if results[i].Status == domain.ImportCreated {
			out.Created++
		} else {
			out.Failed++
		}
	}

	s.logger.Info("[import] bulk import complete", "created", out.Created, "failed", out.Failed)
	return out, nil
}

// importParallel fans items out to s.importWorkers goroutines and collects
// the results in the original order.
func (s *Service) importParallel(ctx context.Context, items []domain.CreateMultimediaRequest, origin string) []domain.ImportItemResult {
	type indexedItem struct {
		index int
		req   domain.CreateMultimediaRequest
	}
	type indexedResult struct {
		index  int
		result domain.ImportItemResult
	}

	itemCh := make(chan indexedItem, len(items))
	resultCh := make(chan indexedResult, len(items))

	var wg sync.WaitGroup
	for i := 0; i < s.importWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for item := range itemCh {
				res := domain.ImportItemResult{Request: item.req}

				if err := ctx.Err(); err != nil {
					res.Status = domain.ImportFailed
					res.Error = "context cancelled"
					resultCh <- indexedResult{index: item.index, result: res}
					continue
				}

				m, err := s.CreateMultimedia(ctx, item.req, origin)
				switch {
				case err == nil:
					res.Status = domain.ImportCreated
					res.Multimedia = m
				case errors.Is(err, ErrInvalidInput):
					res.Status = domain.ImportInvalid
					res.Error = err.Error()
				default:
					res.Status = domain.ImportFailed
					res.Error = err.Error()
					s.logger.Warn("[import] failed to create entry",
						"worker", workerID, "title", item.req.Title, "error", err)
				}
				resultCh <- indexedResult{index: item.index, result: res}
			}
		}(i)
	}

	for i, req := range items {
		itemCh <- indexedItem{index: i, req: req}
	}
	close(itemCh)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]domain.ImportItemResult, len(items))
	for ir := range resultCh {
		results[ir.index] = ir.result
	}
	return results
}
