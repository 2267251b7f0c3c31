package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
	portssvc "github.com/SscSPs/user_profile_aggregator/internal/core/ports/services"
	"github.com/SscSPs/user_profile_aggregator/internal/core/ports/upstreams"
)

type personService struct {
	BaseService
	source upstreams.PersonSource
}

// NewPersonService creates the person service. There is no static fallback for people.
func NewPersonService(source upstreams.PersonSource) portssvc.PersonSvc {
	return &personService{source: source}
}

func (s *personService) FetchPerson(ctx context.Context) (*domain.Person, error) {
	person, err := s.source.FetchPerson(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch random person")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrPersonUnavailable, err)
	}
	if person == nil {
		return nil, fmt.Errorf("%w: empty result", apperrors.ErrPersonUnavailable)
	}

	s.LogDebug(ctx, "Person fetched",
		slog.String("country", person.Country),
		slog.String("dob", domain.FormatDOB(person.DOB)))
	return person, nil
}
