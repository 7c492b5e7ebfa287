package actions

import (
	"context"

	"github.com/carson-networks/cortex-bank-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, store *storage.Storage) error
}
