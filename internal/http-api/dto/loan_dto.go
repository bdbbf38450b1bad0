package dto

import (
	"locallibrary/internal/http-api/service"
)

// RenewRequest is the body of POST /api/loans/:id/renew.
type RenewRequest struct {
	RenewalDate string `json:"renewal_date" binding:"required,datetime=2006-01-02"`
}

type RenewalProposalResponse struct {
	Copy         CopyResponse `json:"copy"`
	ProposedDate string       `json:"proposed_date"`
	Earliest     string       `json:"earliest"`
	Latest       string       `json:"latest"`
}

func FromProposal(p *service.RenewalProposal, viewer service.Viewer) RenewalProposalResponse {
	return RenewalProposalResponse{
		Copy:         FromCopy(*p.Instance, viewer),
		ProposedDate: p.Proposed.Format(DateLayout),
		Earliest:     p.Earliest.Format(DateLayout),
		Latest:       p.Latest.Format(DateLayout),
	}
}
