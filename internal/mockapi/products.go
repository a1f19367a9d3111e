package mockapi

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"walletgg/internal/domain"
)

type productView struct {
	domain.Product
	IsLiked  bool `json:"is_liked"`
	IsJoined bool `json:"is_joined"`
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	typ := domain.ProductType(q.Get("type"))
	bank := q.Get("bank")
	term, _ := strconv.Atoi(q.Get("term"))
	sort := domain.ProductSort(q.Get("sort"))

	s.mu.Lock()
	if len(s.products) == 0 {
		s.products = seedProducts()
	}
	all := slices.Clone(s.products)
	s.mu.Unlock()

	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if matches(p, typ, bank, term) {
			out = append(out, p)
		}
	}
	if sort == domain.SortTopRate {
		sortByRate(out)
	}
	writeJSON(w, http.StatusOK, out)
}

func matches(p domain.Product, typ domain.ProductType, bank string, term int) bool {
	switch {
	case typ == domain.ProductTypeLoan:
		if !p.Type.IsLoan() {
			return false
		}
	case typ != "" && p.Type != typ:
		return false
	}
	if bank != "" && bank != "null" && p.Company != bank {
		return false
	}
	if term > 0 && !typ.IsLoan() {
		return slices.ContainsFunc(p.Options, func(o domain.ProductOption) bool {
			return o.SaveTerm != nil && *o.SaveTerm == term
		})
	}
	return true
}

// sortByRate puts the best product first: highest rate for savings, lowest
// for loans. Products without options go last.
func sortByRate(ps []domain.Product) {
	slices.SortStableFunc(ps, func(a, b domain.Product) int {
		ra, okA := a.BestRate()
		rb, okB := b.BestRate()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		if a.Type.IsLoan() {
			return ra.Cmp(rb)
		}
		return rb.Cmp(ra)
	})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)

	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.findProduct(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "No Product matches the given query.")
		return
	}
	writeJSON(w, http.StatusOK, productView{
		Product:  p,
		IsLiked:  s.liked[user][p.ID],
		IsJoined: s.joined[user][p.ID],
	})
}

func (s *Server) toggleLike(w http.ResponseWriter, r *http.Request) {
	s.toggle(w, r, s.liked, "is_liked", "Added to your liked products.", "Removed from your liked products.")
}

func (s *Server) toggleJoin(w http.ResponseWriter, r *http.Request) {
	s.toggle(w, r, s.joined, "is_joined", "Added to your joined products.", "Removed from your joined products.")
}

func (s *Server) toggle(w http.ResponseWriter, r *http.Request, set map[domain.Username]map[domain.ProductID]bool, field, on, off string) {
	user, _ := userFrom(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.findProduct(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "No Product matches the given query.")
		return
	}
	if set[user] == nil {
		set[user] = map[domain.ProductID]bool{}
	}
	now := !set[user][p.ID]
	if now {
		set[user][p.ID] = true
	} else {
		delete(set[user], p.ID)
	}
	msg := off
	if now {
		msg = on
	}
	writeJSON(w, http.StatusOK, map[string]any{field: now, "message": msg})
}

func (s *Server) likedList(w http.ResponseWriter, r *http.Request) {
	s.personalList(w, r, s.liked)
}

func (s *Server) joinedList(w http.ResponseWriter, r *http.Request) {
	s.personalList(w, r, s.joined)
}

func (s *Server) personalList(w http.ResponseWriter, r *http.Request, set map[domain.Username]map[domain.ProductID]bool) {
	user, _ := userFrom(r)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Product{}
	for _, p := range s.products {
		if set[user][p.ID] {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) importProducts(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = seedProducts()
	etf := 0
	for _, p := range s.products {
		if p.Type == domain.ProductTypeETF {
			etf++
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("saved %d products + ETF %d", len(s.products)-etf, etf),
	})
}

func (s *Server) catalogStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st domain.CatalogStatus
	st.TotalProducts = len(s.products)
	counts := map[domain.ProductType]int{}
	var order []domain.ProductType
	for _, p := range s.products {
		if counts[p.Type] == 0 {
			order = append(order, p.Type)
		}
		counts[p.Type]++
	}
	for _, t := range order {
		st.ByType = append(st.ByType, struct {
			Type  domain.ProductType `json:"product_type"`
			Count int                `json:"count"`
		}{t, counts[t]})
	}
	writeJSON(w, http.StatusOK, st)
}

// findProduct returns the product named by the {id} parameter. Callers hold
// s.mu.
func (s *Server) findProduct(r *http.Request) (domain.Product, bool) {
	id, ok := idParam(r)
	if !ok {
		return domain.Product{}, false
	}
	for _, p := range s.products {
		if p.ID == domain.ProductID(id) {
			return p, true
		}
	}
	return domain.Product{}, false
}
