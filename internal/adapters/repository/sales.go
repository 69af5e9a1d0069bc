package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

type SalesInquiryRepository struct {
	db *sql.DB
}

func NewSalesInquiryRepository(db *sql.DB) *SalesInquiryRepository {
	return &SalesInquiryRepository{db: db}
}

func (r *SalesInquiryRepository) Create(ctx context.Context, inquiry *domain.SalesInquiry) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO sales_inquiries (name, email, company, phone, message, product_interest, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING inquiry_id`,
		inquiry.Name, inquiry.Email, inquiry.Company, inquiry.Phone,
		inquiry.Message, inquiry.ProductInterest, inquiry.SubmittedAt,
	).Scan(&inquiry.InquiryID)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

func (r *SalesInquiryRepository) ListAll(ctx context.Context) ([]domain.SalesInquiry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT inquiry_id, name, email, company, phone, message, product_interest, submitted_at
		 FROM sales_inquiries ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("select inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []domain.SalesInquiry
	for rows.Next() {
		var i domain.SalesInquiry
		err := rows.Scan(&i.InquiryID, &i.Name, &i.Email, &i.Company, &i.Phone,
			&i.Message, &i.ProductInterest, &i.SubmittedAt)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select inquiries: %w", err)
	}
	return inquiries, nil
}
