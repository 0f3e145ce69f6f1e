package agendor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"AgendorBridge/entity"
)

const (
	usersPerPage = 100
	maxUserPages = 10
)

func (s *AgendorService) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	for page := 1; page <= maxUserPages; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(usersPerPage))

		data, err := s.do(ctx, http.MethodGet, "/users", query, nil)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}

		var batch []User
		if err = json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("decode users: %w", err)
		}
		users = append(users, batch...)
		if len(batch) < usersPerPage {
			break
		}
	}
	return users, nil
}

// ResolveResponsibleID finds the id of the Agendor user called name.
// An exact match wins; otherwise name may be a first name shared by no other
// user.
func (s *AgendorService) ResolveResponsibleID(ctx context.Context, name string) (int64, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return 0, err
	}

	id, ok := matchUser(users, name)
	if !ok {
		return 0, &entity.NotFoundError{Resource: "responsible", Key: name}
	}
	s.log.With(
		slog.String("responsible", name),
		slog.Int64("user_id", id),
	).Debug("responsible resolved")
	return id, nil
}

// Ping checks that the token is accepted.
func (s *AgendorService) Ping(ctx context.Context) error {
	if _, err := s.do(ctx, http.MethodGet, "/users/me", nil, nil); err != nil {
		return fmt.Errorf("agendor ping: %w", err)
	}
	return nil
}

func matchUser(users []User, name string) (int64, bool) {
	wanted := normalizeName(name)
	if wanted == "" {
		return 0, false
	}

	for _, u := range users {
		if normalizeName(u.Name) == wanted {
			return u.ID, true
		}
	}

	var found []int64
	for _, u := range users {
		if strings.HasPrefix(normalizeName(u.Name), wanted+" ") {
			found = append(found, u.ID)
		}
	}
	if len(found) == 1 {
		return found[0], true
	}
	return 0, false
}

func normalizeName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}
	return strings.Join(strings.Fields(strings.ToLower(plain)), " ")
}
