package budget_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kharcha/internal/budget"
)

func TestPercentUsed(t *testing.T) {
	tests := []struct {
		name        string
		totalCents  int64
		budgetCents int64
		want        float64
	}{
		{"HalfUsed", 50000, 100000, 0.5},
		{"ExactlyUsed", 100000, 100000, 1.0},
		{"OverspendClampsToOne", 150000, 100000, 1.0},
		{"ZeroBudgetReadsAsZero", 50000, 0, 0.0},
		{"NegativeBudgetReadsAsZero", 50000, -100, 0.0},
		{"NegativeSpendClampsToZero", -100, 100000, 0.0},
		{"NothingSpent", 0, 100000, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, budget.PercentUsed(tt.totalCents, tt.budgetCents), 1e-9)
		})
	}
}

func TestService_SetOverall(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().
			UpsertBudget(gomock.Any(), &budget.Budget{Year: 2024, Month: 1, AmountCents: 500000}).
			Return(nil)

		svc := budget.NewService(repo)
		require.NoError(t, svc.SetOverall(context.Background(), 2024, 1, 500000))
	})

	t.Run("NegativeAmountClampsToZero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().
			UpsertBudget(gomock.Any(), &budget.Budget{Year: 2024, Month: 1, AmountCents: 0}).
			Return(nil)

		svc := budget.NewService(repo)
		require.NoError(t, svc.SetOverall(context.Background(), 2024, 1, -500))
	})

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().UpsertBudget(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		svc := budget.NewService(repo)
		assert.Error(t, svc.SetOverall(context.Background(), 2024, 1, 100))
	})
}

func TestService_Overall_UnsetIsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	repo.EXPECT().GetBudget(gomock.Any(), 2024, 2, "").Return(nil, nil)

	svc := budget.NewService(repo)

	got, err := svc.Overall(context.Background(), 2024, 2)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_ClearOverall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	repo.EXPECT().DeleteBudget(gomock.Any(), 2024, 1, "").Return(nil)

	svc := budget.NewService(repo)
	require.NoError(t, svc.ClearOverall(context.Background(), 2024, 1))
}

func TestService_Watch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	repo.EXPECT().UpsertBudget(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().DeleteBudget(gomock.Any(), 2024, 1, "").Return(nil)

	svc := budget.NewService(repo)

	notified := 0
	unsub := svc.Watch(func() { notified++ })
	defer unsub()

	require.NoError(t, svc.SetOverall(context.Background(), 2024, 1, 100))
	require.NoError(t, svc.ClearOverall(context.Background(), 2024, 1))
	assert.Equal(t, 2, notified)
}
