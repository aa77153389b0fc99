package services

import (
	"context"
	"errors"
	"testing"

	"github.com/orderman/orderman-api/domain"
	"github.com/orderman/orderman-api/models"
	"github.com/orderman/orderman-api/store"
	"github.com/orderman/orderman-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *store.Store {
	s := store.New(testutil.NewTestDB(t))
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestGetCustomerByIDReturnsMatchingCustomer(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)
	svc := NewCustomerService(s)

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		c := &models.Customer{Name: name, Address: "addr", Phone: "555", BankingDetails: "acct", Role: domain.RoleCustomer}
		require.NoError(t, s.InsertCustomer(ctx, c))

		got, found, err := svc.GetCustomerByID(ctx, c.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, c.ID, got.ID, "returned customer id should equal the requested id")
		assert.Equal(t, name, got.Name)
	}
}

func TestGetCustomerByIDMissing(t *testing.T) {
	svc := NewCustomerService(setupStore(t))

	got, found, err := svc.GetCustomerByID(context.Background(), 999)
	assert.NoError(t, err, "a missing customer is not an error")
	assert.False(t, found)
	assert.Nil(t, got)
}

type failingStore struct{ err error }

func (f failingStore) GetCustomer(ctx context.Context, id uint) (*models.Customer, bool, error) {
	return nil, false, f.err
}

func TestGetCustomerByIDPropagatesStorageErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewCustomerService(failingStore{err: boom})

	_, found, err := svc.GetCustomerByID(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.False(t, found)
}

func TestMockCustomerService(t *testing.T) {
	m := NewMockCustomerService(domain.NewCustomer(1, "Alice", "1 Main St", "555-1000", "acct-9", domain.RoleCustomer))

	got, found, err := m.GetCustomerByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Alice", got.Name)

	_, found, _ = m.GetCustomerByID(context.Background(), 2)
	assert.False(t, found)

	m.FailWith(errors.New("down"))
	_, _, err = m.GetCustomerByID(context.Background(), 1)
	assert.Error(t, err)
	assert.Equal(t, 3, m.Calls())
}
