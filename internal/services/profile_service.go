package services

import (
	"context"

	"salesapp/internal/pdf"
)

type ProfileService struct {
	Users    UserStore
	Exporter *pdf.Exporter
}

func NewProfileService(users UserStore, exp *pdf.Exporter) *ProfileService {
	return &ProfileService{Users: users, Exporter: exp}
}

func (s *ProfileService) Remarks(ctx context.Context, email string) (string, error) {
	u, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return u.Remarks, nil
}

func (s *ProfileService) UpdateRemarks(ctx context.Context, email, remarks string) error {
	return s.Users.UpdateRemarks(ctx, email, remarks)
}

// ExportPDF renders the user's profile to a PDF in the export directory and
// returns the generated filename.
func (s *ProfileService) ExportPDF(ctx context.Context, email string) (string, error) {
	u, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return s.Exporter.Export(ctx, u)
}
