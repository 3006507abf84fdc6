package integrity

import (
	"context"
	"testing"

	"economy-manager/core/database/dbtest"
	"economy-manager/core/storage/mocks"
	economymodels "economy-manager/feature/economy/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", []string{"snapshots"}, nil, nil, zap.NewNop())

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

		ch := make(chan minio.ObjectInfo)
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"snapshots"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", "snapshots/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"snapshots"})
		assert.NoError(t, err)
	})
}

func TestService_NoStorage(t *testing.T) {
	svc := NewService(nil, "", []string{"snapshots"}, nil, nil, zap.NewNop())

	_, err := svc.CheckStructure(context.Background())
	assert.ErrorContains(t, err, "storage is not configured")
	assert.Error(t, svc.FixStructure(context.Background(), []string{"snapshots"}))
}

func TestService_Schema(t *testing.T) {
	db := dbtest.New(t, economymodels.All()...)
	svc := NewService(nil, "", nil, db, economymodels.All(), zap.NewNop())

	report, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Len(t, report.Tables, 2)
}
