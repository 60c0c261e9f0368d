package model

// AgreementDocument is the input for the hire agreement export: the
// assigned gig, its hired bid, and the display names of both parties.
type AgreementDocument struct {
	Gig        Gig
	HiredBid   Bid
	OwnerName  string
	BidderName string
}
