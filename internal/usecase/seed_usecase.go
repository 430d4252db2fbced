package usecase

import (
	"log"
	"math/rand"

	"newpay_simulator/internal/domain"
)

// SeedUseCase produces pseudo-random initial transaction data when no real
// catalog-backed dataset is available. The random source is injected so tests
// can drive it with a fixed seed.

type SeedUseCase struct {
	state *domain.State
	rng   *rand.Rand
}

func NewSeedUseCase(state *domain.State, rng *rand.Rand) *SeedUseCase {
	return &SeedUseCase{state: state, rng: rng}
}

// GenerateTransactionData distributes clients across products: for each
// product it links a shuffled prefix of 3 to 8 distinct clients with
// transactions in [10000, 60000) and unit values in [0.5, 3.5), using the
// same link operation the interactive paths use. Growth, market share and
// market growth are drawn independently of the link data.
func (u *SeedUseCase) GenerateTransactionData() {
	u.state.Lock()
	defer u.state.Unlock()

	for _, p := range u.state.Products {
		numClients := u.rng.Intn(6) + 3
		if numClients > len(u.state.Clients) {
			numClients = len(u.state.Clients)
		}

		shuffled := make([]int, len(u.state.Clients))
		for i := range shuffled {
			shuffled[i] = i
		}
		u.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		for i := 0; i < numClients; i++ {
			c := u.state.Clients[shuffled[i]]
			transactions := u.rng.Intn(50000) + 10000
			unitValue := u.rng.Float64()*3 + 0.5
			appendLink(c, p, transactions, unitValue)
		}

		p.Growth = u.rng.Float64()*20 - 5
		p.MarketShare = u.rng.Float64()*30 + 5
		p.MarketGrowth = u.rng.Float64()*15 + 5
	}

	log.Printf("[seed][usecase] generated transaction data products=%d clients=%d", len(u.state.Products), len(u.state.Clients))
}
