package mockapi

import (
	"net/http"
	"strings"

	"walletgg/internal/domain"
)

func (s *Server) goldSilver(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	writeJSON(w, http.StatusOK, map[string][]domain.GoldPrice{
		"gold":   s.gold,
		"silver": s.silver,
	})
}

func (s *Server) youtube(w http.ResponseWriter, r *http.Request) {
	keyword := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("keyword")))

	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []domain.Video{}
	for _, v := range s.videos {
		if keyword == "" ||
			strings.Contains(strings.ToLower(v.Title), keyword) ||
			strings.Contains(strings.ToLower(v.Description), keyword) {
			items = append(items, v)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"kind":  "youtube#searchListResponse",
		"items": items,
	})
}
