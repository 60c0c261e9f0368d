package http

import (
	"time"

	"github.com/abhidesai17/gigflow/internal/model"
)

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type gigResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"ownerId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

type bidResponse struct {
	ID            string  `json:"id"`
	GigID         string  `json:"gigId"`
	BidderID      string  `json:"bidderId"`
	Message       string  `json:"message"`
	ProposedPrice float64 `json:"proposedPrice"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

func toUserResponse(user *model.User) userResponse {
	return userResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}

func toGigResponse(gig *model.Gig) gigResponse {
	return gigResponse{
		ID:          gig.ID.String(),
		OwnerID:     gig.OwnerID.String(),
		Title:       gig.Title,
		Description: gig.Description,
		Budget:      gig.Budget,
		Status:      string(gig.Status),
		CreatedAt:   gig.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toGigResponses(gigs []model.Gig) []gigResponse {
	result := make([]gigResponse, 0, len(gigs))
	for i := range gigs {
		result = append(result, toGigResponse(&gigs[i]))
	}
	return result
}

func toBidResponse(bid *model.Bid) bidResponse {
	return bidResponse{
		ID:            bid.ID.String(),
		GigID:         bid.GigID.String(),
		BidderID:      bid.BidderID.String(),
		Message:       bid.Message,
		ProposedPrice: bid.ProposedPrice,
		Status:        string(bid.Status),
		CreatedAt:     bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toBidResponses(bids []model.Bid) []bidResponse {
	result := make([]bidResponse, 0, len(bids))
	for i := range bids {
		result = append(result, toBidResponse(&bids[i]))
	}
	return result
}
