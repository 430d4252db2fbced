package usecase

import (
	"context"
	"log"
	"sync"

	"newpay_simulator/internal/domain"
	"newpay_simulator/internal/domain/entities"
	"newpay_simulator/internal/usecase/interfaces"
)

// IBootstrapUseCase prepares the state at process start.

type IBootstrapUseCase interface {
	Initialize(ctx context.Context)
}

// BootstrapUseCase loads the three catalog documents in parallel, seeds the
// transaction data and runs the first recompute. Any catalog failure falls
// back wholesale to built-in test catalogs; partial catalog success is not a
// thing. When a persisted snapshot exists it wins over the catalogs.

type BootstrapUseCase struct {
	state     *domain.State
	loader    interfaces.ICatalogLoader
	snapshot  ISnapshotUseCase
	seed      *SeedUseCase
	financial IFinancialUseCase
}

var _ IBootstrapUseCase = (*BootstrapUseCase)(nil)

func NewBootstrapUseCase(
	state *domain.State,
	loader interfaces.ICatalogLoader,
	snapshot ISnapshotUseCase,
	seed *SeedUseCase,
	financial IFinancialUseCase,
) *BootstrapUseCase {
	return &BootstrapUseCase{state: state, loader: loader, snapshot: snapshot, seed: seed, financial: financial}
}

// Initialize never fails: the worst outcome is a synthetic dataset.
func (u *BootstrapUseCase) Initialize(ctx context.Context) {
	if u.snapshot != nil {
		restored, err := u.snapshot.Load(ctx)
		if err == nil && restored {
			log.Printf("[bootstrap][usecase] restored persisted snapshot; skipping catalog load")
			u.financial.Recompute()
			return
		}
	}

	products, clients, strategies, err := u.loadCatalogs(ctx)
	if err != nil {
		log.Printf("[bootstrap][usecase] catalog load failed: %v; falling back to test catalogs", err)
		products, clients, strategies = testCatalogs()
	}

	u.populate(products, clients, strategies)
	u.seed.GenerateTransactionData()
	u.financial.Recompute()
	log.Printf("[bootstrap][usecase] initialized products=%d clients=%d strategies=%d", len(products), len(clients), len(strategies))
}

// loadCatalogs fetches the three documents in parallel. The first error wins
// and fails the whole load.
func (u *BootstrapUseCase) loadCatalogs(ctx context.Context) ([]entities.Product, []entities.Client, []entities.Strategy, error) {
	var (
		wg         sync.WaitGroup
		products   []entities.Product
		clients    []entities.Client
		strategies []entities.Strategy
		errOnce    sync.Once
		firstErr   error
	)
	fail := func(err error) {
		if err != nil {
			errOnce.Do(func() { firstErr = err })
		}
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		products, err = u.loader.LoadProductCatalog(ctx)
		fail(err)
	}()
	go func() {
		defer wg.Done()
		var err error
		clients, err = u.loader.LoadClientCatalog(ctx)
		fail(err)
	}()
	go func() {
		defer wg.Done()
		var err error
		strategies, err = u.loader.LoadStrategyCatalog(ctx)
		fail(err)
	}()
	wg.Wait()

	if firstErr != nil {
		return nil, nil, nil, firstErr
	}
	return products, clients, strategies, nil
}

// populate installs the catalogs into the state with all link data and
// rollups zeroed; the seed pass builds the links afterwards.
func (u *BootstrapUseCase) populate(products []entities.Product, clients []entities.Client, strategies []entities.Strategy) {
	u.state.Lock()
	defer u.state.Unlock()

	u.state.Products = make([]*entities.Product, 0, len(products))
	for _, p := range products {
		u.state.Products = append(u.state.Products, &entities.Product{
			ID:      p.ID,
			Name:    p.Name,
			Unit:    p.Unit,
			Clients: []entities.ProductClientLink{},
		})
	}

	u.state.Clients = make([]*entities.Client, 0, len(clients))
	for _, c := range clients {
		u.state.Clients = append(u.state.Clients, &entities.Client{
			ID:       c.ID,
			Name:     c.Name,
			Type:     c.Type,
			Products: []entities.ClientProductLink{},
		})
	}

	u.state.Strategies = make([]*entities.Strategy, 0, len(strategies))
	active := []int{}
	for i := range strategies {
		st := strategies[i]
		u.state.Strategies = append(u.state.Strategies, &st)
		if st.Activa {
			active = append(active, st.ID)
		}
	}
	u.state.ActiveStrategies = active

	u.state.ReseedIDCounters()
}

// testCatalogs is the built-in dataset used when the catalog documents are
// unavailable or malformed.
func testCatalogs() ([]entities.Product, []entities.Client, []entities.Strategy) {
	products := []entities.Product{
		{ID: 1, Name: "Pagos Online", Unit: "transacción"},
		{ID: 2, Name: "Transferencias Inmediatas", Unit: "transferencia"},
		{ID: 3, Name: "Links de Pago", Unit: "link"},
		{ID: 4, Name: "Billetera Digital", Unit: "operación"},
	}
	clients := []entities.Client{
		{ID: 1, Name: "Banco Nacional", Type: entities.ClientTypeBanco},
		{ID: 2, Name: "Banco del Sur", Type: entities.ClientTypeBanco},
		{ID: 3, Name: "Banco Provincial", Type: entities.ClientTypeBanco},
		{ID: 4, Name: "Banco Unión", Type: entities.ClientTypeBanco},
		{ID: 5, Name: "PagoYa", Type: entities.ClientTypeFintech},
		{ID: 6, Name: "FinExpress", Type: entities.ClientTypeFintech},
		{ID: 7, Name: "DigiCuenta", Type: entities.ClientTypeFintech},
		{ID: 8, Name: "CrediMóvil", Type: entities.ClientTypeFintech},
	}
	strategies := []entities.Strategy{
		{ID: 1, Description: "Expansión a comercios medianos", ImpactoIngresos: 15},
		{ID: 2, Description: "Programa de fidelización de clientes", ImpactoIngresos: 10},
		{ID: 3, Description: "Alianzas con bancos regionales", ImpactoIngresos: 20},
	}
	return products, clients, strategies
}
