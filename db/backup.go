package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/octabyte/bm-rabbitmq-api/responses"
	"github.com/octabyte/bm-rabbitmq-api/utils/logger"
)

// Exporter is satisfied by *lib.ManagementClient.
type Exporter interface {
	ExportDefinitions(ctx context.Context) (responses.DefinitionSet, error)
}

// Importer is satisfied by *lib.ManagementClient.
type Importer interface {
	ImportDefinitions(ctx context.Context, defs responses.DefinitionSet) error
}

// Backup exports the cluster definitions and saves them under name.
func Backup(ctx context.Context, from Exporter, to Store, name string) (responses.DefinitionSet, error) {
	defs, err := from.ExportDefinitions(ctx)
	if err != nil {
		return responses.DefinitionSet{}, fmt.Errorf("db: export definitions: %w", err)
	}
	if err := to.Save(ctx, name, defs); err != nil {
		return responses.DefinitionSet{}, err
	}

	logger.LogInfo("definitions backed up",
		zap.String("snapshot", name),
		zap.Int("vhosts", len(defs.VirtualHosts)),
		zap.Int("queues", len(defs.Queues)),
		zap.Int("exchanges", len(defs.Exchanges)),
	)
	return defs, nil
}

// Restore loads the snapshot name and imports it into the cluster.
func Restore(ctx context.Context, from Store, to Importer, name string) error {
	defs, err := from.Load(ctx, name)
	if err != nil {
		return err
	}
	if err := to.ImportDefinitions(ctx, defs); err != nil {
		return fmt.Errorf("db: import definitions: %w", err)
	}

	logger.LogInfo("definitions restored", zap.String("snapshot", name))
	return nil
}
