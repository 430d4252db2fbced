package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"newpay_simulator/internal/domain"
	"newpay_simulator/internal/domain/entities"
	"newpay_simulator/internal/usecase/interfaces"
)

// DefaultSnapshotKey is the logical key the persisted record lives under.
const DefaultSnapshotKey = "newpay-strategic-simulator"

var ErrSnapshotRepositoryNil = errors.New("snapshot repository not configured")

// SnapshotRecord is the persisted projection of the state. Exactly these
// fields are written; the PESTEL/Porter catalogs and the budget targets are
// static configuration and deliberately excluded.
//
// Every field is a pointer so a load can tell "absent, keep the default"
// from "present, replace the default wholesale". That is the whole merge
// rule: no recursive merging into nested values.

type SnapshotRecord struct {
	Products                *[]entities.Product     `json:"products,omitempty"`
	Clients                 *[]entities.Client      `json:"clients,omitempty"`
	Strategies              *[]entities.Strategy    `json:"strategies,omitempty"`
	SelectedPestelVariables *[]int                  `json:"selectedPestelVariables,omitempty"`
	SelectedPorterVariables *[]int                  `json:"selectedPorterVariables,omitempty"`
	ActiveStrategies        *[]int                  `json:"activeStrategies,omitempty"`
	FinancialData           *entities.FinancialData `json:"financialData,omitempty"`
	CurrentSection          *string                 `json:"currentSection,omitempty"`
}

// ISnapshotUseCase persists and restores the simulator state as one JSON blob
// under one logical key.

type ISnapshotUseCase interface {
	Save(ctx context.Context) error
	Load(ctx context.Context) (restored bool, err error)
}

type SnapshotUseCase struct {
	state *domain.State
	repo  interfaces.ISnapshotRepository
	key   string
}

var _ ISnapshotUseCase = (*SnapshotUseCase)(nil)

func NewSnapshotUseCase(state *domain.State, repo interfaces.ISnapshotRepository, key string) *SnapshotUseCase {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &SnapshotUseCase{state: state, repo: repo, key: key}
}

// Save serializes the persisted subset and writes it under the snapshot key.
func (u *SnapshotUseCase) Save(ctx context.Context) error {
	if u.repo == nil {
		return ErrSnapshotRepositoryNil
	}

	record := Serialize(u.state)
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := u.repo.Save(ctx, u.key, raw); err != nil {
		log.Printf("[snapshot][usecase] save failed key=%s err=%v", u.key, err)
		return err
	}
	log.Printf("[snapshot][usecase] saved key=%s bytes=%d", u.key, len(raw))
	return nil
}

// Load reads the stored record and applies it over the compiled-in defaults.
// A missing, unreadable or malformed record is discarded: the state reverts
// to defaults and no error is surfaced, so a corrupt blob can never brick
// startup. The returned flag reports whether a stored record was applied.
func (u *SnapshotUseCase) Load(ctx context.Context) (bool, error) {
	if u.repo == nil {
		return false, ErrSnapshotRepositoryNil
	}

	raw, err := u.repo.Load(ctx, u.key)
	if err != nil {
		log.Printf("[snapshot][usecase] load failed key=%s err=%v; reverting to defaults", u.key, err)
		u.applyRecord(SnapshotRecord{})
		return false, nil
	}

	record, ok := Deserialize(raw)
	if !ok {
		log.Printf("[snapshot][usecase] no usable record key=%s; reverting to defaults", u.key)
		u.applyRecord(SnapshotRecord{})
		return false, nil
	}

	u.applyRecord(record)
	log.Printf("[snapshot][usecase] restored key=%s", u.key)
	return true, nil
}

// Serialize projects the persisted field subset out of the state.
func Serialize(s *domain.State) SnapshotRecord {
	s.Lock()
	defer s.Unlock()

	products := make([]entities.Product, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, p.Clone())
	}
	clients := make([]entities.Client, 0, len(s.Clients))
	for _, c := range s.Clients {
		clients = append(clients, c.Clone())
	}
	strategies := make([]entities.Strategy, 0, len(s.Strategies))
	for _, st := range s.Strategies {
		strategies = append(strategies, *st)
	}
	selectedPestel := append([]int{}, s.SelectedPestelVariables...)
	selectedPorter := append([]int{}, s.SelectedPorterVariables...)
	active := append([]int{}, s.ActiveStrategies...)
	financial := s.FinancialData
	section := s.CurrentSection

	return SnapshotRecord{
		Products:                &products,
		Clients:                 &clients,
		Strategies:              &strategies,
		SelectedPestelVariables: &selectedPestel,
		SelectedPorterVariables: &selectedPorter,
		ActiveStrategies:        &active,
		FinancialData:           &financial,
		CurrentSection:          &section,
	}
}

// Deserialize parses a stored record. A nil, empty or malformed blob yields
// ok=false; callers fall back to defaults unchanged.
func Deserialize(raw json.RawMessage) (SnapshotRecord, bool) {
	if len(raw) == 0 {
		return SnapshotRecord{}, false
	}
	var record SnapshotRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return SnapshotRecord{}, false
	}
	return record, true
}

// applyRecord rebuilds the state as defaults overlaid with whichever record
// fields are present, then reseeds the id counters past the restored ids.
func (u *SnapshotUseCase) applyRecord(record SnapshotRecord) {
	u.state.Lock()
	defer u.state.Unlock()

	products := []*entities.Product{}
	if record.Products != nil {
		for i := range *record.Products {
			p := (*record.Products)[i].Clone()
			products = append(products, &p)
		}
	}
	clients := []*entities.Client{}
	if record.Clients != nil {
		for i := range *record.Clients {
			c := (*record.Clients)[i].Clone()
			clients = append(clients, &c)
		}
	}
	strategies := []*entities.Strategy{}
	if record.Strategies != nil {
		for i := range *record.Strategies {
			st := (*record.Strategies)[i]
			strategies = append(strategies, &st)
		}
	}

	u.state.Products = products
	u.state.Clients = clients
	u.state.Strategies = strategies

	u.state.SelectedPestelVariables = []int{}
	if record.SelectedPestelVariables != nil {
		u.state.SelectedPestelVariables = append([]int{}, *record.SelectedPestelVariables...)
	}
	u.state.SelectedPorterVariables = []int{}
	if record.SelectedPorterVariables != nil {
		u.state.SelectedPorterVariables = append([]int{}, *record.SelectedPorterVariables...)
	}
	u.state.ActiveStrategies = []int{}
	if record.ActiveStrategies != nil {
		u.state.ActiveStrategies = append([]int{}, *record.ActiveStrategies...)
	}

	u.state.FinancialData = domain.DefaultFinancialData()
	if record.FinancialData != nil {
		u.state.FinancialData = *record.FinancialData
	}

	u.state.CurrentSection = domain.DefaultSection
	if record.CurrentSection != nil {
		u.state.CurrentSection = *record.CurrentSection
	}

	// Static configuration always comes from defaults, never from the record.
	u.state.PestelVariables = domain.DefaultPestelVariables()
	u.state.PorterVariables = domain.DefaultPorterVariables()
	u.state.Budget = domain.DefaultBudget()

	u.state.ReseedIDCounters()
}
