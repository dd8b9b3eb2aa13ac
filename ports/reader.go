package ports

import (
	"context"

	"alumstats/domain/survey"
)

// DatasetReader loads a survey export once. Implementations return
// FILE_ERROR and PARSE_ERROR application errors for unreadable or malformed
// input.
type DatasetReader interface {
	ReadDataset(ctx context.Context) (*survey.Dataset, error)
}
