package domain

import (
	ledgerdomain "github.com/loanflowlabs/loanflow/internal/ledger/domain"
	plandomain "github.com/loanflowlabs/loanflow/internal/plan/domain"
)

// Scope selects which subscription record a transition touches: the tenant-wide
// bundle or a single product add-on. It is resolved once from the purchased
// plan's product type so downstream code branches on the variant instead of
// re-deriving it from the raw column.
type Scope struct {
	product string
}

func TenantWideScope() Scope {
	return Scope{}
}

func ProductScope(productKey string) Scope {
	return Scope{product: productKey}
}

// ScopeForPlan maps a plan's product-type tag onto a scope. An absent tag or
// the platform sentinel means the tenant-wide bundle.
func ScopeForPlan(p plandomain.Plan) Scope {
	if p.IsProductScoped() {
		return ProductScope(*p.ProductType)
	}
	return TenantWideScope()
}

func (s Scope) IsProductAddOn() bool {
	return s.product != ""
}

// Product returns the product key for add-on scopes.
func (s Scope) Product() (string, bool) {
	if s.product == "" {
		return "", false
	}
	return s.product, true
}

// LedgerProductKey is the snapshot written to the payment ledger: the product
// key, or the platform sentinel for tenant-wide transitions.
func (s Scope) LedgerProductKey() string {
	if s.product == "" {
		return ledgerdomain.ScopePlatform
	}
	return s.product
}
