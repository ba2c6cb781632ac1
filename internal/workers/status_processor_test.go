package workers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adesina-labs/pharmhub-be/internal/workers"
	"github.com/adesina-labs/pharmhub-be/test/helpers"
	"github.com/adesina-labs/pharmhub-be/test/mocks"
)

func TestStatusProcessor_SweepDrugStatus(t *testing.T) {
	task := asynq.NewTask(workers.TypeDrugStatusSweep, nil)

	tests := []struct {
		name      string
		setupMock func(drugs *mocks.MockDrugRepository, cache *mocks.MockCacheRepository)
		wantErr   string
	}{
		{
			name: "sweep with changes invalidates dashboard cache",
			setupMock: func(drugs *mocks.MockDrugRepository, cache *mocks.MockCacheRepository) {
				drugs.EXPECT().
					MarkExpired(gomock.Any(), gomock.AssignableToTypeOf(time.Time{})).
					Return(int64(3), nil)
				drugs.EXPECT().
					MarkOutOfStock(gomock.Any()).
					Return(int64(2), nil)
				cache.EXPECT().
					DeletePattern(gomock.Any(), "dash:*").
					Return(nil)
			},
		},
		{
			name: "quiet sweep touches nothing",
			setupMock: func(drugs *mocks.MockDrugRepository, cache *mocks.MockCacheRepository) {
				drugs.EXPECT().
					MarkExpired(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
				drugs.EXPECT().
					MarkOutOfStock(gomock.Any()).
					Return(int64(0), nil)
			},
		},
		{
			name: "cache failure does not fail the sweep",
			setupMock: func(drugs *mocks.MockDrugRepository, cache *mocks.MockCacheRepository) {
				drugs.EXPECT().
					MarkExpired(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
				drugs.EXPECT().
					MarkOutOfStock(gomock.Any()).
					Return(int64(0), nil)
				cache.EXPECT().
					DeletePattern(gomock.Any(), "dash:*").
					Return(errors.New("redis down"))
			},
		},
		{
			name: "expiry sweep failure is returned",
			setupMock: func(drugs *mocks.MockDrugRepository, cache *mocks.MockCacheRepository) {
				drugs.EXPECT().
					MarkExpired(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("connection refused"))
			},
			wantErr: "failed to mark expired drugs",
		},
		{
			name: "stock sweep failure is returned",
			setupMock: func(drugs *mocks.MockDrugRepository, cache *mocks.MockCacheRepository) {
				drugs.EXPECT().
					MarkExpired(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
				drugs.EXPECT().
					MarkOutOfStock(gomock.Any()).
					Return(int64(0), errors.New("connection refused"))
			},
			wantErr: "failed to mark out-of-stock drugs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			drugs := mocks.NewMockDrugRepository(ctrl)
			cache := mocks.NewMockCacheRepository(ctrl)
			tt.setupMock(drugs, cache)

			processor := workers.NewStatusProcessor(drugs, cache, nil, "", helpers.TestLogger())
			err := processor.SweepDrugStatus(context.Background(), task)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatusProcessor_SweepWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	drugs := mocks.NewMockDrugRepository(ctrl)
	drugs.EXPECT().MarkExpired(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	drugs.EXPECT().MarkOutOfStock(gomock.Any()).Return(int64(1), nil)

	processor := workers.NewStatusProcessor(drugs, nil, nil, "", helpers.TestLogger())
	err := processor.SweepDrugStatus(context.Background(),
		asynq.NewTask(workers.TypeDrugStatusSweep, nil))
	require.NoError(t, err)
}
