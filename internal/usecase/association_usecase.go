package usecase

import (
	"errors"
	"log"
	"strings"

	"newpay_simulator/internal/domain"
	"newpay_simulator/internal/domain/entities"
)

var (
	ErrInvalidProductName = errors.New("invalid product name")
	ErrInvalidClientName  = errors.New("invalid client name")
	ErrInvalidClientType  = errors.New("invalid client type")
	ErrInvalidLinkValues  = errors.New("invalid link values")
	ErrProductNotFound    = errors.New("product not found")
	ErrClientNotFound     = errors.New("client not found")
)

// LinkSpec is one requested product association for a client: which product,
// how many transactions and at which unit price. Revenue is always derived.

type LinkSpec struct {
	ProductID    int
	Transactions int
	UnitValue    float64
}

// IAssociationUseCase maintains the bidirectional product/client association
// model.
//
// Consistency contract, enforced by every mutation:
//   - a client's link to a product and that product's link back to the client
//     always carry identical transactions, unitValue and revenue;
//   - client.Transactions/Revenue are the sums over its links;
//   - product.Transactions is the sum over its links and product.UnitValue is
//     the plain mean of its per-link unit values.

type IAssociationUseCase interface {
	AddProduct(name, unit string, transactions int, unitValue float64) (entities.Product, error)
	AddClient(name string, clientType entities.ClientType, links []LinkSpec) (entities.Client, error)
	EditClient(id int, name string, clientType entities.ClientType, links []LinkSpec) (entities.Client, error)
	Link(clientID, productID, transactions int, unitValue float64) (entities.Client, error)
	GetProduct(id int) (entities.Product, error)
	GetClient(id int) (entities.Client, error)
	ListProducts() []entities.Product
	ListClients() []entities.Client
}

type AssociationUseCase struct {
	state *domain.State
}

var _ IAssociationUseCase = (*AssociationUseCase)(nil)

func NewAssociationUseCase(state *domain.State) *AssociationUseCase {
	return &AssociationUseCase{state: state}
}

// AddProduct registers a new product with no client links. The transaction
// and unit value arguments are the user-declared starting aggregates; the
// first Link replaces the unit value with the running mean over links.
func (u *AssociationUseCase) AddProduct(name, unit string, transactions int, unitValue float64) (entities.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if transactions < 0 || unitValue < 0 {
		return entities.Product{}, ErrInvalidLinkValues
	}

	u.state.Lock()
	defer u.state.Unlock()

	p := &entities.Product{
		ID:           u.state.NextProductID(),
		Name:         name,
		Unit:         strings.TrimSpace(unit),
		Clients:      []entities.ProductClientLink{},
		Transactions: transactions,
		UnitValue:    unitValue,
	}
	u.state.Products = append(u.state.Products, p)
	log.Printf("[association][usecase] product added id=%d name=%q", p.ID, p.Name)
	return p.Clone(), nil
}

// AddClient registers a new client and links it to the requested products.
//
// Link entries with non-positive transactions or unit value are dropped, the
// same filtering the dashboard form applies to unchecked rows. An unknown
// product id is a caller error and rejects the whole request.
func (u *AssociationUseCase) AddClient(name string, clientType entities.ClientType, links []LinkSpec) (entities.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if !clientType.Valid() {
		return entities.Client{}, ErrInvalidClientType
	}

	u.state.Lock()
	defer u.state.Unlock()

	for _, spec := range links {
		if u.state.FindProduct(spec.ProductID) == nil {
			return entities.Client{}, ErrProductNotFound
		}
	}

	c := &entities.Client{
		ID:       u.state.NextClientID(),
		Name:     name,
		Type:     clientType,
		Products: []entities.ClientProductLink{},
	}
	u.state.Clients = append(u.state.Clients, c)

	accepted := 0
	for _, spec := range links {
		if spec.Transactions <= 0 || spec.UnitValue <= 0 {
			continue
		}
		appendLink(c, u.state.FindProduct(spec.ProductID), spec.Transactions, spec.UnitValue)
		accepted++
	}
	log.Printf("[association][usecase] client added id=%d name=%q links=%d dropped=%d", c.ID, c.Name, accepted, len(links)-accepted)
	return c.Clone(), nil
}

// EditClient replaces a client's identity fields and its whole link set, then
// reconciles the product side so the mirror holds again.
func (u *AssociationUseCase) EditClient(id int, name string, clientType entities.ClientType, links []LinkSpec) (entities.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if !clientType.Valid() {
		return entities.Client{}, ErrInvalidClientType
	}

	u.state.Lock()
	defer u.state.Unlock()

	c := u.state.FindClient(id)
	if c == nil {
		return entities.Client{}, ErrClientNotFound
	}
	for _, spec := range links {
		if u.state.FindProduct(spec.ProductID) == nil {
			return entities.Client{}, ErrProductNotFound
		}
	}

	c.Name = name
	c.Type = clientType
	u.rebindClient(c, links)
	log.Printf("[association][usecase] client edited id=%d name=%q links=%d", c.ID, c.Name, len(c.Products))
	return c.Clone(), nil
}

// Link associates one client with one product. Unlike the add/edit paths it
// rejects invalid values explicitly instead of filtering them, so callers can
// tell "nothing to do" from "rejected".
func (u *AssociationUseCase) Link(clientID, productID, transactions int, unitValue float64) (entities.Client, error) {
	if transactions <= 0 || unitValue <= 0 {
		return entities.Client{}, ErrInvalidLinkValues
	}

	u.state.Lock()
	defer u.state.Unlock()

	c := u.state.FindClient(clientID)
	if c == nil {
		return entities.Client{}, ErrClientNotFound
	}
	p := u.state.FindProduct(productID)
	if p == nil {
		return entities.Client{}, ErrProductNotFound
	}

	appendLink(c, p, transactions, unitValue)
	log.Printf("[association][usecase] linked client=%d product=%d transactions=%d", c.ID, p.ID, transactions)
	return c.Clone(), nil
}

func (u *AssociationUseCase) GetProduct(id int) (entities.Product, error) {
	u.state.Lock()
	defer u.state.Unlock()
	p := u.state.FindProduct(id)
	if p == nil {
		return entities.Product{}, ErrProductNotFound
	}
	return p.Clone(), nil
}

func (u *AssociationUseCase) GetClient(id int) (entities.Client, error) {
	u.state.Lock()
	defer u.state.Unlock()
	c := u.state.FindClient(id)
	if c == nil {
		return entities.Client{}, ErrClientNotFound
	}
	return c.Clone(), nil
}

func (u *AssociationUseCase) ListProducts() []entities.Product {
	u.state.Lock()
	defer u.state.Unlock()
	out := make([]entities.Product, 0, len(u.state.Products))
	for _, p := range u.state.Products {
		out = append(out, p.Clone())
	}
	return out
}

func (u *AssociationUseCase) ListClients() []entities.Client {
	u.state.Lock()
	defer u.state.Unlock()
	out := make([]entities.Client, 0, len(u.state.Clients))
	for _, c := range u.state.Clients {
		out = append(out, c.Clone())
	}
	return out
}

// rebindClient replaces the client's link set wholesale, recomputes its
// rollups as direct sums over the accepted entries and reconciles the product
// side. Callers must hold the lock.
func (u *AssociationUseCase) rebindClient(c *entities.Client, links []LinkSpec) {
	newLinks := make([]entities.ClientProductLink, 0, len(links))
	totalTransactions := 0
	totalRevenue := 0.0

	for _, spec := range links {
		if spec.Transactions <= 0 || spec.UnitValue <= 0 {
			continue
		}
		p := u.state.FindProduct(spec.ProductID)
		if p == nil {
			continue
		}
		revenue := float64(spec.Transactions) * spec.UnitValue
		newLinks = append(newLinks, entities.ClientProductLink{
			ProductID:    p.ID,
			ProductName:  p.Name,
			Transactions: spec.Transactions,
			UnitValue:    spec.UnitValue,
			Revenue:      revenue,
		})
		totalTransactions += spec.Transactions
		totalRevenue += revenue
	}

	c.Products = newLinks
	c.Transactions = totalTransactions
	c.Revenue = totalRevenue

	u.reconcileProductSide(c)
}

// reconcileProductSide rebuilds every product's view of the given client: all
// existing links for the client id are stripped (full scan, every product),
// fresh links are appended from the client's current set, and each product's
// rollups are recomputed from scratch. Reconstruction over diffing keeps the
// mirror correct even if the sides had drifted.
func (u *AssociationUseCase) reconcileProductSide(c *entities.Client) {
	for _, p := range u.state.Products {
		kept := make([]entities.ProductClientLink, 0, len(p.Clients))
		for _, link := range p.Clients {
			if link.ClientID != c.ID {
				kept = append(kept, link)
			}
		}
		p.Clients = kept
	}

	for _, cp := range c.Products {
		p := u.state.FindProduct(cp.ProductID)
		if p == nil {
			continue
		}
		p.Clients = append(p.Clients, entities.ProductClientLink{
			ClientID:     c.ID,
			ClientName:   c.Name,
			Transactions: cp.Transactions,
			UnitValue:    cp.UnitValue,
			Revenue:      cp.Revenue,
		})
	}

	for _, p := range u.state.Products {
		total := 0
		unitSum := 0.0
		for _, link := range p.Clients {
			total += link.Transactions
			unitSum += link.UnitValue
		}
		p.Transactions = total
		if n := len(p.Clients); n > 0 {
			p.UnitValue = unitSum / float64(n)
		} else {
			p.UnitValue = 0
		}
	}
}

// appendLink appends the mirrored pair of links and updates both rollups.
// The product's unit value becomes the running unweighted mean over its links
// after the append. Callers must hold the lock.
func appendLink(c *entities.Client, p *entities.Product, transactions int, unitValue float64) {
	revenue := float64(transactions) * unitValue

	c.Products = append(c.Products, entities.ClientProductLink{
		ProductID:    p.ID,
		ProductName:  p.Name,
		Transactions: transactions,
		UnitValue:    unitValue,
		Revenue:      revenue,
	})
	c.Transactions += transactions
	c.Revenue += revenue

	p.Clients = append(p.Clients, entities.ProductClientLink{
		ClientID:     c.ID,
		ClientName:   c.Name,
		Transactions: transactions,
		UnitValue:    unitValue,
		Revenue:      revenue,
	})
	p.Transactions += transactions
	n := float64(len(p.Clients))
	p.UnitValue = (p.UnitValue*(n-1) + unitValue) / n
}
