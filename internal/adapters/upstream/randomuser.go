package upstream

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

const defaultRandomUserURL = "https://randomuser.me/api/"

type randomUserResponse struct {
	Results []randomUserResult `json:"results" validate:"required,min=1,dive"`
}

type randomUserResult struct {
	Gender string `json:"gender"`
	Name   struct {
		First string `json:"first" validate:"required"`
		Last  string `json:"last" validate:"required"`
	} `json:"name"`
	Location struct {
		Street struct {
			Number int    `json:"number"`
			Name   string `json:"name"`
		} `json:"street"`
		City    string `json:"city"`
		Country string `json:"country" validate:"required"`
	} `json:"location"`
	Email string `json:"email"`
	Dob   struct {
		Date string `json:"date" validate:"required"`
	} `json:"dob"`
	Phone   string `json:"phone"`
	Picture struct {
		Large string `json:"large"`
	} `json:"picture"`
	Nat string `json:"nat"`
}

// RandomUserClient talks to the randomuser.me person generator.
type RandomUserClient struct {
	client   *http.Client
	validate *validator.Validate
	BaseURL  string
}

// NewRandomUserClient creates a person generator client. An empty baseURL uses the public service.
func NewRandomUserClient(client *http.Client, baseURL string) *RandomUserClient {
	if baseURL == "" {
		baseURL = defaultRandomUserURL
	}
	return &RandomUserClient{
		client:   client,
		validate: validator.New(),
		BaseURL:  baseURL,
	}
}

// FetchPerson fetches one random person.
func (c *RandomUserClient) FetchPerson(ctx context.Context) (*domain.Person, error) {
	var resp randomUserResponse
	if err := getJSON(ctx, c.client, c.BaseURL, &resp); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(resp); err != nil {
		return nil, fmt.Errorf("%w: unexpected person payload: %w", apperrors.ErrUpstreamUnavailable, err)
	}
	return mapRandomUser(resp.Results[0])
}

func mapRandomUser(u randomUserResult) (*domain.Person, error) {
	dob, err := domain.ParseDOB(u.Dob.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUpstreamUnavailable, err)
	}

	return &domain.Person{
		FirstName:   u.Name.First,
		LastName:    u.Name.Last,
		Gender:      u.Gender,
		DOB:         dob,
		City:        u.Location.City,
		Country:     u.Location.Country,
		Address:     formatStreet(u.Location.Street.Name, u.Location.Street.Number),
		Email:       u.Email,
		Phone:       u.Phone,
		Nationality: u.Nat,
		Picture:     u.Picture.Large,
	}, nil
}

func formatStreet(name string, number int) string {
	parts := make([]string, 0, 2)
	if name != "" {
		parts = append(parts, name)
	}
	if number != 0 {
		parts = append(parts, strconv.Itoa(number))
	}
	return strings.Join(parts, ", ")
}
