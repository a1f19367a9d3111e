package mockapi

import (
	"net/http"
	"slices"
	"strings"

	"walletgg/internal/domain"
)

func (s *Server) listArticles(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Article, 0, len(s.articles))
	for _, a := range s.articles {
		out = append(out, *a)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createArticle(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)
	var p domain.ArticlePayload
	if err := readJSON(r, &p); err != nil || strings.TrimSpace(p.Title) == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"title": {"This field may not be blank."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextArticle++
	now := s.now().UTC()
	a := &domain.Article{
		ID:        s.nextArticle,
		User:      user,
		Nickname:  s.nickname(user),
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: now,
		UpdatedAt: now,
		Comments:  []domain.Comment{},
	}
	s.articles = append(s.articles, a)
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) getArticle(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a := s.findArticle(r)
	if a == nil {
		writeDetail(w, http.StatusNotFound, "No Article matches the given query.")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) updateArticle(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)
	var p domain.ArticlePayload
	if err := readJSON(r, &p); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed request.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findArticle(r)
	switch {
	case a == nil:
		writeDetail(w, http.StatusNotFound, "No Article matches the given query.")
		return
	case a.User != user:
		writeDetail(w, http.StatusForbidden, "You do not have permission to perform this action.")
		return
	}
	a.Title = p.Title
	a.Content = p.Content
	a.UpdatedAt = s.now().UTC()
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) deleteArticle(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findArticle(r)
	switch {
	case a == nil:
		writeDetail(w, http.StatusNotFound, "No Article matches the given query.")
		return
	case a.User != user:
		writeDetail(w, http.StatusForbidden, "You do not have permission to perform this action.")
		return
	}
	s.articles = slices.DeleteFunc(s.articles, func(x *domain.Article) bool { return x.ID == a.ID })
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)
	var p domain.CommentPayload
	if err := readJSON(r, &p); err != nil || strings.TrimSpace(p.Content) == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"content": {"This field may not be blank."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findArticle(r)
	if a == nil {
		writeDetail(w, http.StatusNotFound, "No Article matches the given query.")
		return
	}
	s.nextComment++
	now := s.now().UTC()
	c := domain.Comment{
		ID:        s.nextComment,
		User:      user,
		Nickname:  s.nickname(user),
		Article:   a.ID,
		Content:   p.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	a.Comments = append(a.Comments, c)
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)
	id, ok := idParam(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.articles {
		for i, c := range a.Comments {
			if c.ID != domain.CommentID(id) {
				continue
			}
			if c.User != user {
				writeDetail(w, http.StatusForbidden, "You do not have permission to perform this action.")
				return
			}
			a.Comments = slices.Delete(a.Comments, i, i+1)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "No Comment matches the given query.")
}

// findArticle returns the article named by the {id} parameter. Callers hold
// s.mu.
func (s *Server) findArticle(r *http.Request) *domain.Article {
	id, ok := idParam(r)
	if !ok {
		return nil
	}
	for _, a := range s.articles {
		if a.ID == domain.ArticleID(id) {
			return a
		}
	}
	return nil
}
