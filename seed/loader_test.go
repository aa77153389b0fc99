package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/orderman/orderman-api/domain"
	"github.com/orderman/orderman-api/store"
	"github.com/orderman/orderman-api/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *store.Store {
	s := store.New(testutil.NewTestDB(t))
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestLoadSampleFixture(t *testing.T) {
	f, err := LoadFile(filepath.Join("..", "fixtures", "sample.yaml"))
	require.NoError(t, err)

	assert.Len(t, f.Customers, 3)
	assert.Len(t, f.Orders, 2)
	assert.Equal(t, domain.RoleAccountant, f.Customers[2].Role)
	assert.Equal(t, "2024-03-01T14:00:00Z", f.Orders[0].OrderDate.UTC().Format("2006-01-02T15:04:05Z"))
	assert.Nil(t, f.Orders[1].InvoiceReference)
	assert.True(t, decimal.RequireFromString("13.50").Equal(f.Invoices[0].Amount))

	ctx := context.Background()
	s := newStore(t)
	sum, err := f.Apply(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, Summary{Customers: 3, Products: 2, Invoices: 1, Orders: 2, Payments: 1}, sum)
	assert.Equal(t, 9, sum.Total())

	alice, found, err := s.GetCustomer(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "acct-9", alice.BankingDetails)

	orders, err := s.OrdersForCustomer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, []string{"Blue ceramic mug", "Blue ceramic mug", "Matching saucer", "Matching saucer"}, []string(orders[0].Items))
}

func TestApplyStopsAtDanglingReference(t *testing.T) {
	f, err := Parse([]byte(`
customers:
  - id: 1
    name: Alice
    address: 1 Main St
    phone: 555-1000
    banking_details: acct-9
    role: customer
payments:
  - invoice_id: 404
    amount: "1.00"
    status: pending
    payment_method: cash
`))
	require.NoError(t, err)

	sum, err := f.Apply(context.Background(), newStore(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrConstraintViolation)
	assert.Contains(t, err.Error(), "payments[0]")
	assert.Equal(t, 1, sum.Customers, "records written before the failure are counted")
	assert.Equal(t, 0, sum.Payments)
}

func TestParseRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		entry string
	}{
		{
			name: "unknown role",
			yaml: `
customers:
  - name: Bob
    role: technician
`,
			entry: "customers[0]",
		},
		{
			name: "bad price",
			yaml: `
products:
  - description: Mug
    price: "four"
`,
			entry: "products[0]",
		},
		{
			name: "negative amount",
			yaml: `
invoices:
  - amount: "-1"
    status: pending
`,
			entry: "invoices[0]",
		},
		{
			name: "unknown order status",
			yaml: `
orders:
  - customer_id: 1
    total_amount: "1"
    status: closed
`,
			entry: "orders[0]",
		},
		{
			name: "missing payment method",
			yaml: `
payments:
  - invoice_id: 1
    amount: "1"
    status: pending
`,
			entry: "payments[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.entry, le.Entry)
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Path, "missing.yaml")

	p := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(p, []byte("customers: [\n"), 0o644))
	_, err = LoadFile(p)
	require.ErrorAs(t, err, &le)
	assert.Equal(t, p, le.Path)
}
