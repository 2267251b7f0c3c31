package dto

import (
	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
)

// UserResponse is the person part of a profile as rendered on the wire.
type UserResponse struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Gender      string `json:"gender"`
	DOB         string `json:"dob" example:"06/15/2000"`
	Age         int    `json:"age"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	Picture     string `json:"picture"`
}

// UserProfileResponse is the body of a successful GET /api/user.
type UserProfileResponse struct {
	Success  bool                 `json:"success"`
	User     UserResponse         `json:"user"`
	Country  domain.CountryInfo   `json:"country"`
	Exchange domain.ExchangeQuote `json:"exchange"`
	News     []domain.NewsItem    `json:"news"`
}

// ToUserResponse converts a domain.Person, dob rendered as MM/DD/YYYY.
func ToUserResponse(p domain.Person) UserResponse {
	return UserResponse{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Gender:      p.Gender,
		DOB:         domain.FormatDisplayDOB(p.DOB),
		Age:         p.Age,
		City:        p.City,
		Country:     p.Country,
		Address:     p.Address,
		Email:       p.Email,
		Phone:       p.Phone,
		Nationality: p.Nationality,
		Picture:     p.Picture,
	}
}

// ToUserProfileResponse converts a domain.Profile to its response DTO
func ToUserProfileResponse(profile *domain.Profile) UserProfileResponse {
	news := profile.News
	if news == nil {
		news = []domain.NewsItem{}
	}
	return UserProfileResponse{
		Success:  true,
		User:     ToUserResponse(profile.Person),
		Country:  profile.Country,
		Exchange: profile.Exchange,
		News:     news,
	}
}
