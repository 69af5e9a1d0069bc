package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
	"github.com/arsicorp/zenith-lab-robotics/internal/ports"
)

// SalesService accepts and lists sales inquiries.
type SalesService struct {
	inquiries ports.SalesInquiryStore
	now       func() time.Time
}

func NewSalesService(inquiries ports.SalesInquiryStore) *SalesService {
	return &SalesService{inquiries: inquiries, now: time.Now}
}

func (s *SalesService) Submit(ctx context.Context, inquiry domain.SalesInquiry) (*domain.SalesInquiry, error) {
	inquiry.Name = strings.TrimSpace(inquiry.Name)
	inquiry.Email = strings.TrimSpace(inquiry.Email)
	inquiry.Message = strings.TrimSpace(inquiry.Message)
	if inquiry.Name == "" || inquiry.Message == "" || !emailPattern.MatchString(inquiry.Email) {
		return nil, ErrInvalidInput
	}

	inquiry.SubmittedAt = s.now()
	if err := s.inquiries.Create(ctx, &inquiry); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return &inquiry, nil
}

// ListAll returns every inquiry. Admin only; enforced at the transport
// layer.
func (s *SalesService) ListAll(ctx context.Context) ([]domain.SalesInquiry, error) {
	inquiries, err := s.inquiries.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return inquiries, nil
}
