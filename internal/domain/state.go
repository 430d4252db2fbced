package domain

import (
	"sync"

	"newpay_simulator/internal/domain/entities"
)

// DefaultSection is the dashboard section shown on first load.
const DefaultSection = "clientes"

// State is the simulator's in-memory store: the canonical product and client
// collections, the strategy list, the framework selections and the single
// derived FinancialData record.
//
// It is an explicit object handed to each use case; there is no package-level
// ambient state. All mutations go through the use cases, which hold the lock
// for the whole mutation so no concurrent handler ever observes the
// product/client mirror half-updated.
//
// Ids are issued by monotonic per-collection counters rather than derived
// from collection length, so they stay unique regardless of future deletions.

type State struct {
	mu sync.Mutex

	Products   []*entities.Product
	Clients    []*entities.Client
	Strategies []*entities.Strategy

	PestelVariables map[entities.PestelCategory][]entities.FrameworkVariable
	PorterVariables map[entities.PorterForce][]entities.FrameworkVariable

	SelectedPestelVariables []int
	SelectedPorterVariables []int
	ActiveStrategies        []int

	FinancialData entities.FinancialData
	Budget        entities.Budget

	CurrentSection string

	nextProductID int
	nextClientID  int
}

// NewState returns a State carrying the compiled-in defaults.
func NewState() *State {
	return &State{
		Products:                []*entities.Product{},
		Clients:                 []*entities.Client{},
		Strategies:              []*entities.Strategy{},
		PestelVariables:         DefaultPestelVariables(),
		PorterVariables:         DefaultPorterVariables(),
		SelectedPestelVariables: []int{},
		SelectedPorterVariables: []int{},
		ActiveStrategies:        []int{},
		FinancialData:           DefaultFinancialData(),
		Budget:                  DefaultBudget(),
		CurrentSection:          DefaultSection,
		nextProductID:           1,
		nextClientID:            1,
	}
}

func (s *State) Lock()   { s.mu.Lock() }
func (s *State) Unlock() { s.mu.Unlock() }

// NextProductID issues the next product id. Callers must hold the lock.
func (s *State) NextProductID() int {
	id := s.nextProductID
	s.nextProductID++
	return id
}

// NextClientID issues the next client id. Callers must hold the lock.
func (s *State) NextClientID() int {
	id := s.nextClientID
	s.nextClientID++
	return id
}

// ReseedIDCounters moves both counters past the highest ids currently in the
// collections. Called after bootstrap and after a snapshot restore, where
// entities arrive with ids the counters never issued.
func (s *State) ReseedIDCounters() {
	s.nextProductID = 1
	for _, p := range s.Products {
		if p.ID >= s.nextProductID {
			s.nextProductID = p.ID + 1
		}
	}
	s.nextClientID = 1
	for _, c := range s.Clients {
		if c.ID >= s.nextClientID {
			s.nextClientID = c.ID + 1
		}
	}
}

// FindProduct returns the product with the given id, or nil. Callers must
// hold the lock.
func (s *State) FindProduct(id int) *entities.Product {
	for _, p := range s.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindClient returns the client with the given id, or nil. Callers must hold
// the lock.
func (s *State) FindClient(id int) *entities.Client {
	for _, c := range s.Clients {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FindStrategy returns the strategy with the given id, or nil. Callers must
// hold the lock.
func (s *State) FindStrategy(id int) *entities.Strategy {
	for _, st := range s.Strategies {
		if st.ID == id {
			return st
		}
	}
	return nil
}

// DefaultFinancialData are the metric values before any recompute.
func DefaultFinancialData() entities.FinancialData {
	return entities.FinancialData{
		Revenue:     0,
		OpCosts:     0,
		GenExpenses: 0,
		Ebitda:      0,
		ROI:         0,
		NPS:         50,
		Churn:       5,
		Uptime:      99.5,
	}
}

// DefaultBudget are the static per-metric targets.
func DefaultBudget() entities.Budget {
	return entities.Budget{
		Revenue:     1000000,
		OpCosts:     300000,
		GenExpenses: 200000,
		Ebitda:      500000,
		ROI:         25,
		NPS:         60,
		Churn:       3,
		Uptime:      99.9,
	}
}

// DefaultPestelVariables returns the static PESTEL catalog skeleton.
func DefaultPestelVariables() map[entities.PestelCategory][]entities.FrameworkVariable {
	return map[entities.PestelCategory][]entities.FrameworkVariable{
		entities.PestelPolitical:     {},
		entities.PestelEconomic:      {},
		entities.PestelSocial:        {},
		entities.PestelTechnological: {},
		entities.PestelEcological:    {},
		entities.PestelLegal:         {},
	}
}

// DefaultPorterVariables returns the static Porter catalog skeleton.
func DefaultPorterVariables() map[entities.PorterForce][]entities.FrameworkVariable {
	return map[entities.PorterForce][]entities.FrameworkVariable{
		entities.PorterNewEntrants: {},
		entities.PorterBuyers:      {},
		entities.PorterSubstitutes: {},
		entities.PorterCompetition: {},
		entities.PorterSuppliers:   {},
	}
}
