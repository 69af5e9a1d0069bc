package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
	"github.com/arsicorp/zenith-lab-robotics/internal/ports"
)

func TestApply(t *testing.T) {
	openJob := &domain.Job{JobID: 3, Title: "Controls Engineer", Open: true}

	tests := []struct {
		name        string
		application domain.JobApplication
		mockSetup   func(jobs *ports.MockJobStore, apps *ports.MockJobApplicationStore)
		wantErr     error
	}{
		{
			name:        "success",
			application: domain.JobApplication{JobID: 3, Name: "Ada Nguyen", Email: "ada@example.com"},
			mockSetup: func(jobs *ports.MockJobStore, apps *ports.MockJobApplicationStore) {
				jobs.EXPECT().GetByID(gomock.Any(), int64(3)).Return(openJob, nil)
				apps.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *domain.JobApplication) error {
						assert.False(t, a.SubmittedAt.IsZero())
						return nil
					})
			},
		},
		{
			name:        "missing name",
			application: domain.JobApplication{JobID: 3, Email: "ada@example.com"},
			mockSetup:   func(jobs *ports.MockJobStore, apps *ports.MockJobApplicationStore) {},
			wantErr:     ErrInvalidInput,
		},
		{
			name:        "bad email",
			application: domain.JobApplication{JobID: 3, Name: "Ada", Email: "not-an-email"},
			mockSetup:   func(jobs *ports.MockJobStore, apps *ports.MockJobApplicationStore) {},
			wantErr:     ErrInvalidInput,
		},
		{
			name:        "unknown job",
			application: domain.JobApplication{JobID: 99, Name: "Ada", Email: "ada@example.com"},
			mockSetup: func(jobs *ports.MockJobStore, apps *ports.MockJobApplicationStore) {
				jobs.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			jobs := ports.NewMockJobStore(ctrl)
			apps := ports.NewMockJobApplicationStore(ctrl)
			tt.mockSetup(jobs, apps)

			svc := NewCareersService(jobs, apps, nil)
			got, err := svc.Apply(context.Background(), tt.application)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
		})
	}
}

func TestListJobs_NilCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := ports.NewMockJobStore(ctrl)
	posted := []domain.Job{{JobID: 1, Title: "Field Technician", PostedDate: time.Now(), Open: true}}
	jobs.EXPECT().ListOpen(gomock.Any()).Return(posted, nil)

	svc := NewCareersService(jobs, ports.NewMockJobApplicationStore(ctrl), nil)
	got, err := svc.ListJobs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, posted, got)
}

func TestGetJob_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := ports.NewMockJobStore(ctrl)
	jobs.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, nil)

	svc := NewCareersService(jobs, ports.NewMockJobApplicationStore(ctrl), nil)
	_, err := svc.GetJob(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitInquiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inquiries := ports.NewMockSalesInquiryStore(ctrl)
	inquiries.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, i *domain.SalesInquiry) error {
			assert.False(t, i.SubmittedAt.IsZero())
			return nil
		})

	svc := NewSalesService(inquiries)
	got, err := svc.Submit(context.Background(), domain.SalesInquiry{
		Name:    "Ada Nguyen",
		Email:   "ada@example.com",
		Message: "Interested in a fleet quote.",
	})

	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestSubmitInquiry_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewSalesService(ports.NewMockSalesInquiryStore(ctrl))

	_, err := svc.Submit(context.Background(), domain.SalesInquiry{Email: "ada@example.com", Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Submit(context.Background(), domain.SalesInquiry{Name: "Ada", Email: "bad", Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
