package mockapi

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"walletgg/internal/domain"
)

func (s *Server) signUp(w http.ResponseWriter, r *http.Request) {
	var req domain.SignUpRequest
	if err := readJSON(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed request.")
		return
	}

	problems := map[string][]string{}
	if strings.TrimSpace(req.Username.String()) == "" {
		problems["username"] = []string{"This field may not be blank."}
	}
	if req.Password1 == "" {
		problems["password1"] = []string{"This field may not be blank."}
	} else if req.Password1 != req.Password2 {
		problems["password2"] = []string{"The two password fields didn't match."}
	}
	if len(problems) > 0 {
		writeJSON(w, http.StatusBadRequest, problems)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), bcrypt.MinCost)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"password1": {err.Error()}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.accounts[req.Username]; taken {
		writeJSON(w, http.StatusBadRequest, map[string][]string{
			"username": {"A user with that username already exists."},
		})
		return
	}
	s.accounts[req.Username] = &account{
		username: req.Username,
		hash:     hash,
		nickname: req.Nickname,
		email:    req.Email,
	}
	writeJSON(w, http.StatusCreated, map[string]string{"key": s.issueToken(req.Username)})
}

func (s *Server) logIn(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := readJSON(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed request.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[req.Username]
	if !ok || bcrypt.CompareHashAndPassword(acc.hash, []byte(req.Password)) != nil {
		writeJSON(w, http.StatusBadRequest, map[string][]string{
			"non_field_errors": {"Unable to log in with provided credentials."},
		})
		return
	}
	writeJSON(w, http.StatusOK, domain.LoginResponse{Key: s.issueToken(req.Username)})
}

// issueToken returns the user's token, creating one on first use. Callers
// hold s.mu.
func (s *Server) issueToken(user domain.Username) string {
	for k, u := range s.tokens {
		if u == user {
			return k
		}
	}
	key := strings.ReplaceAll(uuid.NewString(), "-", "")
	s.tokens[key] = user
	return key
}

func (s *Server) nickname(user domain.Username) string {
	if acc, ok := s.accounts[user]; ok && acc.nickname != "" {
		return acc.nickname
	}
	return user.String()
}
