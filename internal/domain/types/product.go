package types

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// ProductType is the catalog category of a product.
type ProductType string

// Product types served by the catalog. ProductTypeLoan is a filter alias that
// matches mortgage, rent and credit products.
const (
	ProductTypeDeposit  ProductType = "deposit"
	ProductTypeSaving   ProductType = "saving"
	ProductTypeAnnuity  ProductType = "annuity"
	ProductTypeMortgage ProductType = "mortgage"
	ProductTypeRent     ProductType = "rent"
	ProductTypeCredit   ProductType = "credit"
	ProductTypeETF      ProductType = "etf"
	ProductTypeLoan     ProductType = "loan"
)

// IsLoan reports whether lower rates are better for this type.
func (t ProductType) IsLoan() bool {
	switch t {
	case ProductTypeMortgage, ProductTypeRent, ProductTypeCredit, ProductTypeLoan:
		return true
	}
	return false
}

// Product is a deposit, saving, loan, annuity or ETF product.
type Product struct {
	ID               ProductID       `json:"id"`
	Code             string          `json:"fin_prdt_cd"`
	Company          string          `json:"kor_co_nm"`
	Name             string          `json:"fin_prdt_nm"`
	Type             ProductType     `json:"product_type"`
	EtcNote          string          `json:"etc_note,omitempty"`
	JoinDeny         *int            `json:"join_deny,omitempty"`
	JoinMember       string          `json:"join_member,omitempty"`
	JoinWay          string          `json:"join_way,omitempty"`
	SpecialCondition string          `json:"spcl_cnd,omitempty"`
	MaturityInterest string          `json:"mtrt_int,omitempty"`
	MaxLimit         *int64          `json:"max_limit,omitempty"`
	Options          []ProductOption `json:"options"`

	// Set on detail responses for an authenticated caller.
	IsLiked  bool `json:"is_liked,omitempty"`
	IsJoined bool `json:"is_joined,omitempty"`
}

// ProductOption is one rate/term variant of a product.
type ProductOption struct {
	ID           int64           `json:"id"`
	Code         string          `json:"fin_prdt_cd"`
	RateTypeName string          `json:"intr_rate_type_nm"`
	Rate         decimal.Decimal `json:"intr_rate"`
	MaxRate      decimal.Decimal `json:"intr_rate2"`
	SaveTerm     *int            `json:"save_trm,omitempty"`
	EtcInfo      map[string]any  `json:"etc_info,omitempty"`
}

// BestRate returns the highest preferential rate over all options, or the
// lowest base rate for loans. ok is false when the product has no options.
func (p Product) BestRate() (rate decimal.Decimal, ok bool) {
	for i, o := range p.Options {
		r := o.MaxRate
		if p.Type.IsLoan() {
			r = o.Rate
		}
		if i == 0 || (p.Type.IsLoan() && r.LessThan(rate)) || (!p.Type.IsLoan() && r.GreaterThan(rate)) {
			rate = r
		}
	}
	return rate, len(p.Options) > 0
}

// ProductSort orders the catalog listing.
type ProductSort string

// Sort keys understood by the catalog endpoint.
const (
	SortDefault ProductSort = ""
	SortTopRate ProductSort = "top_rate"
)

// Query encodes the filter as catalog query parameters.
func (f ProductFilter) Query() url.Values {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	if f.Bank != "" {
		q.Set("bank", f.Bank)
	}
	if f.Term > 0 {
		q.Set("term", strconv.Itoa(f.Term))
	}
	if f.Sort != SortDefault {
		q.Set("sort", string(f.Sort))
	}
	return q
}

// ProductFilter narrows a catalog listing. Zero values mean "no filter".
type ProductFilter struct {
	Type ProductType
	Bank string
	Term int
	Sort ProductSort
}

// CatalogStatus is the response of /products/check-status/.
type CatalogStatus struct {
	TotalProducts int `json:"total_products"`
	ByType        []struct {
		Type  ProductType `json:"product_type"`
		Count int         `json:"count"`
	} `json:"by_type"`
}
