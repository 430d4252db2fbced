package usecase

import (
	"errors"
	"strings"

	"newpay_simulator/internal/domain"
	"newpay_simulator/internal/domain/entities"
)

var ErrInvalidSection = errors.New("invalid section")

// SessionView is a consistent read of everything the dashboard renders,
// taken under a single lock so the mirror invariant holds across the view.

type SessionView struct {
	Products                []entities.Product
	Clients                 []entities.Client
	Strategies              []entities.Strategy
	SelectedPestelVariables []int
	SelectedPorterVariables []int
	ActiveStrategies        []int
	FinancialData           entities.FinancialData
	Budget                  entities.Budget
	CurrentSection          string
}

// ISessionUseCase owns the per-session UI state: framework selections and the
// current dashboard section.

type ISessionUseCase interface {
	SetPestelSelection(ids []int) []int
	SetPorterSelection(ids []int) []int
	SetSection(section string) (string, error)
	View() SessionView
}

type SessionUseCase struct {
	state *domain.State
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(state *domain.State) *SessionUseCase {
	return &SessionUseCase{state: state}
}

// SetPestelSelection replaces the selected PESTEL variable ids wholesale.
func (u *SessionUseCase) SetPestelSelection(ids []int) []int {
	u.state.Lock()
	defer u.state.Unlock()
	u.state.SelectedPestelVariables = append([]int{}, ids...)
	return append([]int{}, u.state.SelectedPestelVariables...)
}

// SetPorterSelection replaces the selected Porter variable ids wholesale.
func (u *SessionUseCase) SetPorterSelection(ids []int) []int {
	u.state.Lock()
	defer u.state.Unlock()
	u.state.SelectedPorterVariables = append([]int{}, ids...)
	return append([]int{}, u.state.SelectedPorterVariables...)
}

// SetSection records the dashboard section the user navigated to.
func (u *SessionUseCase) SetSection(section string) (string, error) {
	section = strings.TrimSpace(section)
	if section == "" {
		return "", ErrInvalidSection
	}
	u.state.Lock()
	defer u.state.Unlock()
	u.state.CurrentSection = section
	return section, nil
}

func (u *SessionUseCase) View() SessionView {
	u.state.Lock()
	defer u.state.Unlock()

	view := SessionView{
		Products:                make([]entities.Product, 0, len(u.state.Products)),
		Clients:                 make([]entities.Client, 0, len(u.state.Clients)),
		Strategies:              make([]entities.Strategy, 0, len(u.state.Strategies)),
		SelectedPestelVariables: append([]int{}, u.state.SelectedPestelVariables...),
		SelectedPorterVariables: append([]int{}, u.state.SelectedPorterVariables...),
		ActiveStrategies:        append([]int{}, u.state.ActiveStrategies...),
		FinancialData:           u.state.FinancialData,
		Budget:                  u.state.Budget,
		CurrentSection:          u.state.CurrentSection,
	}
	for _, p := range u.state.Products {
		view.Products = append(view.Products, p.Clone())
	}
	for _, c := range u.state.Clients {
		view.Clients = append(view.Clients, c.Clone())
	}
	for _, st := range u.state.Strategies {
		view.Strategies = append(view.Strategies, *st)
	}
	return view
}
