package usecase

import (
	"errors"
	"math"
	"testing"

	"newpay_simulator/internal/domain"
	"newpay_simulator/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6*math.Max(1, math.Abs(b))
}

// verifyMirror asserts the bidirectional link invariant and the rollup sums
// over the whole store.
func verifyMirror(t *testing.T, state *domain.State) {
	t.Helper()
	state.Lock()
	defer state.Unlock()

	for _, c := range state.Clients {
		totalTransactions := 0
		totalRevenue := 0.0
		for _, cp := range c.Products {
			totalTransactions += cp.Transactions
			totalRevenue += cp.Revenue

			p := state.FindProduct(cp.ProductID)
			if p == nil {
				t.Fatalf("client %d links unknown product %d", c.ID, cp.ProductID)
			}
			found := false
			for _, pc := range p.Clients {
				if pc.ClientID == c.ID && pc.Transactions == cp.Transactions && pc.UnitValue == cp.UnitValue && pc.Revenue == cp.Revenue {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("product %d missing mirrored link for client %d", p.ID, c.ID)
			}
		}
		if c.Transactions != totalTransactions {
			t.Fatalf("client %d transactions rollup: got %d want %d", c.ID, c.Transactions, totalTransactions)
		}
		if !almostEqual(c.Revenue, totalRevenue) {
			t.Fatalf("client %d revenue rollup: got %v want %v", c.ID, c.Revenue, totalRevenue)
		}
	}

	for _, p := range state.Products {
		totalTransactions := 0
		unitSum := 0.0
		for _, pc := range p.Clients {
			totalTransactions += pc.Transactions
			unitSum += pc.UnitValue

			c := state.FindClient(pc.ClientID)
			if c == nil {
				t.Fatalf("product %d links unknown client %d", p.ID, pc.ClientID)
			}
			found := false
			for _, cp := range c.Products {
				if cp.ProductID == p.ID && cp.Transactions == pc.Transactions && cp.UnitValue == pc.UnitValue && cp.Revenue == pc.Revenue {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("client %d missing mirrored link for product %d", c.ID, p.ID)
			}
		}
		if len(p.Clients) > 0 {
			if p.Transactions != totalTransactions {
				t.Fatalf("product %d transactions rollup: got %d want %d", p.ID, p.Transactions, totalTransactions)
			}
			if !almostEqual(p.UnitValue, unitSum/float64(len(p.Clients))) {
				t.Fatalf("product %d unit value: got %v want %v", p.ID, p.UnitValue, unitSum/float64(len(p.Clients)))
			}
		}
	}
}

func TestAssociationUseCase_AddProduct(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewAssociationUseCase(domain.NewState())
		_, err := uc.AddProduct("   ", "transacción", 100, 1.5)
		if !errors.Is(err, ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})

	t.Run("negative values", func(t *testing.T) {
		uc := NewAssociationUseCase(domain.NewState())
		_, err := uc.AddProduct("Pagos Online", "transacción", -1, 1.5)
		if !errors.Is(err, ErrInvalidLinkValues) {
			t.Fatalf("expected ErrInvalidLinkValues, got %v", err)
		}
	})

	t.Run("success with sequential ids", func(t *testing.T) {
		uc := NewAssociationUseCase(domain.NewState())
		p1, err := uc.AddProduct(" Pagos Online ", "transacción", 100, 1.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p1.ID != 1 || p1.Name != "Pagos Online" || p1.Transactions != 100 || p1.UnitValue != 1.5 {
			t.Fatalf("unexpected product: %+v", p1)
		}
		if len(p1.Clients) != 0 {
			t.Fatalf("expected no links, got %d", len(p1.Clients))
		}

		p2, err := uc.AddProduct("Links de Pago", "link", 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p2.ID != 2 {
			t.Fatalf("expected id 2, got %d", p2.ID)
		}
	})
}

func TestAssociationUseCase_Link(t *testing.T) {
	newFixture := func(t *testing.T) (*AssociationUseCase, *domain.State) {
		t.Helper()
		state := domain.NewState()
		uc := NewAssociationUseCase(state)
		if _, err := uc.AddProduct("P1", "tx", 0, 0); err != nil {
			t.Fatalf("add product: %v", err)
		}
		if _, err := uc.AddProduct("P2", "tx", 0, 0); err != nil {
			t.Fatalf("add product: %v", err)
		}
		if _, err := uc.AddClient("C1", entities.ClientTypeBanco, nil); err != nil {
			t.Fatalf("add client: %v", err)
		}
		if _, err := uc.AddClient("C2", entities.ClientTypeFintech, nil); err != nil {
			t.Fatalf("add client: %v", err)
		}
		return uc, state
	}

	t.Run("rejects zero transactions", func(t *testing.T) {
		uc, state := newFixture(t)
		_, err := uc.Link(1, 1, 0, 5)
		if !errors.Is(err, ErrInvalidLinkValues) {
			t.Fatalf("expected ErrInvalidLinkValues, got %v", err)
		}
		c, _ := uc.GetClient(1)
		p, _ := uc.GetProduct(1)
		if len(c.Products) != 0 || len(p.Clients) != 0 || c.Transactions != 0 || p.Transactions != 0 {
			t.Fatalf("rejected link must not mutate: client=%+v product=%+v", c, p)
		}
		verifyMirror(t, state)
	})

	t.Run("rejects zero unit value", func(t *testing.T) {
		uc, _ := newFixture(t)
		_, err := uc.Link(1, 1, 5, 0)
		if !errors.Is(err, ErrInvalidLinkValues) {
			t.Fatalf("expected ErrInvalidLinkValues, got %v", err)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		uc, _ := newFixture(t)
		_, err := uc.Link(99, 1, 10, 1)
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		uc, _ := newFixture(t)
		_, err := uc.Link(1, 99, 10, 1)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("running mean over two links", func(t *testing.T) {
		uc, state := newFixture(t)
		if _, err := uc.Link(1, 1, 1000, 2.0); err != nil {
			t.Fatalf("link: %v", err)
		}
		if _, err := uc.Link(2, 1, 2000, 4.0); err != nil {
			t.Fatalf("link: %v", err)
		}

		p1, _ := uc.GetProduct(1)
		if p1.Transactions != 3000 {
			t.Fatalf("expected 3000 transactions, got %d", p1.Transactions)
		}
		if !almostEqual(p1.UnitValue, 3.0) {
			t.Fatalf("expected unit value 3.0 (plain mean), got %v", p1.UnitValue)
		}

		c1, _ := uc.GetClient(1)
		if !almostEqual(c1.Revenue, 2000) {
			t.Fatalf("expected C1 revenue 2000, got %v", c1.Revenue)
		}
		c2, _ := uc.GetClient(2)
		if !almostEqual(c2.Revenue, 8000) {
			t.Fatalf("expected C2 revenue 8000, got %v", c2.Revenue)
		}

		p2, _ := uc.GetProduct(2)
		if len(p2.Clients) != 0 || p2.Transactions != 0 {
			t.Fatalf("P2 must stay untouched: %+v", p2)
		}
		verifyMirror(t, state)
	})

	t.Run("mean is unweighted not transaction-weighted", func(t *testing.T) {
		uc, _ := newFixture(t)
		if _, err := uc.Link(1, 1, 1, 1.0); err != nil {
			t.Fatalf("link: %v", err)
		}
		if _, err := uc.Link(2, 1, 1000000, 3.0); err != nil {
			t.Fatalf("link: %v", err)
		}
		p, _ := uc.GetProduct(1)
		if !almostEqual(p.UnitValue, 2.0) {
			t.Fatalf("expected 2.0 regardless of volume, got %v", p.UnitValue)
		}
	})
}

func TestAssociationUseCase_AddClient(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		uc := NewAssociationUseCase(domain.NewState())
		_, err := uc.AddClient("C1", "Cooperativa", nil)
		if !errors.Is(err, ErrInvalidClientType) {
			t.Fatalf("expected ErrInvalidClientType, got %v", err)
		}
	})

	t.Run("unknown product rejects whole request", func(t *testing.T) {
		state := domain.NewState()
		uc := NewAssociationUseCase(state)
		_, err := uc.AddClient("C1", entities.ClientTypeBanco, []LinkSpec{{ProductID: 7, Transactions: 10, UnitValue: 1}})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if len(uc.ListClients()) != 0 {
			t.Fatalf("client must not be created on rejection")
		}
	})

	t.Run("filters zero-valued rows and keeps the rest", func(t *testing.T) {
		state := domain.NewState()
		uc := NewAssociationUseCase(state)
		if _, err := uc.AddProduct("P1", "tx", 0, 0); err != nil {
			t.Fatalf("add product: %v", err)
		}
		if _, err := uc.AddProduct("P2", "tx", 0, 0); err != nil {
			t.Fatalf("add product: %v", err)
		}

		c, err := uc.AddClient("C1", entities.ClientTypeFintech, []LinkSpec{
			{ProductID: 1, Transactions: 500, UnitValue: 2.0},
			{ProductID: 2, Transactions: 0, UnitValue: 2.0},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Products) != 1 {
			t.Fatalf("expected 1 accepted link, got %d", len(c.Products))
		}
		if c.Transactions != 500 || !almostEqual(c.Revenue, 1000) {
			t.Fatalf("unexpected rollups: %+v", c)
		}
		verifyMirror(t, state)
	})
}

func TestAssociationUseCase_EditClient(t *testing.T) {
	newFixture := func(t *testing.T) (*AssociationUseCase, *domain.State) {
		t.Helper()
		state := domain.NewState()
		uc := NewAssociationUseCase(state)
		for _, name := range []string{"P1", "P2", "P3"} {
			if _, err := uc.AddProduct(name, "tx", 0, 0); err != nil {
				t.Fatalf("add product: %v", err)
			}
		}
		if _, err := uc.AddClient("C1", entities.ClientTypeBanco, []LinkSpec{
			{ProductID: 1, Transactions: 1000, UnitValue: 2.0},
			{ProductID: 2, Transactions: 2000, UnitValue: 1.0},
		}); err != nil {
			t.Fatalf("add client: %v", err)
		}
		if _, err := uc.AddClient("C2", entities.ClientTypeFintech, []LinkSpec{
			{ProductID: 1, Transactions: 3000, UnitValue: 4.0},
		}); err != nil {
			t.Fatalf("add client: %v", err)
		}
		return uc, state
	}

	t.Run("unknown client", func(t *testing.T) {
		uc, _ := newFixture(t)
		_, err := uc.EditClient(42, "X", entities.ClientTypeBanco, nil)
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("removing all links zeroes rollups and strips both products", func(t *testing.T) {
		uc, state := newFixture(t)
		c, err := uc.EditClient(1, "C1", entities.ClientTypeBanco, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Products) != 0 || c.Transactions != 0 || c.Revenue != 0 {
			t.Fatalf("expected zeroed client, got %+v", c)
		}

		p1, _ := uc.GetProduct(1)
		for _, link := range p1.Clients {
			if link.ClientID == 1 {
				t.Fatalf("P1 still references client 1")
			}
		}
		// P1 keeps C2's link and its rollups now reflect only that link.
		if p1.Transactions != 3000 || !almostEqual(p1.UnitValue, 4.0) {
			t.Fatalf("P1 rollups not recomputed: %+v", p1)
		}

		p2, _ := uc.GetProduct(2)
		if len(p2.Clients) != 0 || p2.Transactions != 0 || p2.UnitValue != 0 {
			t.Fatalf("P2 must be emptied and zeroed: %+v", p2)
		}
		verifyMirror(t, state)
	})

	t.Run("rebind replaces link set and renames mirrored links", func(t *testing.T) {
		uc, state := newFixture(t)
		c, err := uc.EditClient(1, "Banco Renombrado", entities.ClientTypeFintech, []LinkSpec{
			{ProductID: 2, Transactions: 500, UnitValue: 3.0},
			{ProductID: 3, Transactions: 100, UnitValue: 1.0},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "Banco Renombrado" || c.Type != entities.ClientTypeFintech {
			t.Fatalf("identity not updated: %+v", c)
		}
		if c.Transactions != 600 || !almostEqual(c.Revenue, 1600) {
			t.Fatalf("unexpected rollups: %+v", c)
		}

		p2, _ := uc.GetProduct(2)
		if len(p2.Clients) != 1 || p2.Clients[0].ClientName != "Banco Renombrado" {
			t.Fatalf("P2 mirror not rebuilt: %+v", p2.Clients)
		}
		p3, _ := uc.GetProduct(3)
		if len(p3.Clients) != 1 || p3.Transactions != 100 {
			t.Fatalf("P3 mirror not rebuilt: %+v", p3)
		}
		verifyMirror(t, state)
	})

	t.Run("edit is idempotent for an unchanged link set", func(t *testing.T) {
		uc, state := newFixture(t)
		specs := []LinkSpec{{ProductID: 1, Transactions: 1000, UnitValue: 2.0}, {ProductID: 2, Transactions: 2000, UnitValue: 1.0}}
		first, err := uc.EditClient(1, "C1", entities.ClientTypeBanco, specs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.EditClient(1, "C1", entities.ClientTypeBanco, specs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Transactions != second.Transactions || !almostEqual(first.Revenue, second.Revenue) {
			t.Fatalf("repeat edit drifted: %+v vs %+v", first, second)
		}
		verifyMirror(t, state)
	})
}

func TestAssociationUseCase_Getters(t *testing.T) {
	state := domain.NewState()
	uc := NewAssociationUseCase(state)
	if _, err := uc.AddProduct("P1", "tx", 0, 0); err != nil {
		t.Fatalf("add product: %v", err)
	}
	if _, err := uc.AddClient("C1", entities.ClientTypeBanco, []LinkSpec{{ProductID: 1, Transactions: 10, UnitValue: 1}}); err != nil {
		t.Fatalf("add client: %v", err)
	}

	t.Run("not found", func(t *testing.T) {
		if _, err := uc.GetProduct(9); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if _, err := uc.GetClient(9); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("returned values are detached copies", func(t *testing.T) {
		p, _ := uc.GetProduct(1)
		p.Clients[0].Transactions = 999999
		again, _ := uc.GetProduct(1)
		if again.Clients[0].Transactions == 999999 {
			t.Fatalf("store mutated through returned copy")
		}
	})
}
