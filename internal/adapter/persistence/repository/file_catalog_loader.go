package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"newpay_simulator/internal/domain/entities"
	"newpay_simulator/internal/usecase/interfaces"
)

const defaultDataDir = "./data"

// FileCatalogLoader reads the three bootstrap catalogs from a data directory:
// productos.json, clientes.json and estrategias.json. The documents keep the
// schema the dashboard has always shipped with, so existing catalog files
// load unchanged.

type FileCatalogLoader struct {
	dir string
}

var _ interfaces.ICatalogLoader = (*FileCatalogLoader)(nil)

func NewFileCatalogLoader() *FileCatalogLoader {
	return &FileCatalogLoader{dir: getenvDefault("DATA_DIR", defaultDataDir)}
}

func (l *FileCatalogLoader) LoadProductCatalog(ctx context.Context) ([]entities.Product, error) {
	var out []entities.Product
	if err := l.readDocument(ctx, "productos.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *FileCatalogLoader) LoadClientCatalog(ctx context.Context) ([]entities.Client, error) {
	var out []entities.Client
	if err := l.readDocument(ctx, "clientes.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *FileCatalogLoader) LoadStrategyCatalog(ctx context.Context) ([]entities.Strategy, error) {
	var out []entities.Strategy
	if err := l.readDocument(ctx, "estrategias.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *FileCatalogLoader) readDocument(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
