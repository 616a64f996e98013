package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/facturio/facturio/internal/domain/invoice"
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenantContext(tenantID string) context.Context {
	return types.SetTenantID(context.Background(), tenantID)
}

func draftInvoice(id, tenantID, series string) *invoice.Invoice {
	inv := &invoice.Invoice{
		ID:         id,
		CustomerID: CustomerInnovaID,
		Status:     types.InvoiceStatusDraft,
		Series:     series,
		Currency:   types.CurrencyEUR,
		Lines: []*invoice.Line{
			{
				ID:          id + "_line",
				Description: "Consulting",
				Quantity:    decimal.NewFromInt(2),
				UnitPrice:   decimal.NewFromInt(100),
				TaxRate:     decimal.NewFromInt(21),
			},
		},
		BaseModel: types.BaseModel{
			TenantID:  tenantID,
			Status:    types.StatusPublished,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		},
	}
	inv.Recalculate()
	return inv
}

func TestInvoiceStoreTenantIsolation(t *testing.T) {
	store := NewInMemoryInvoiceStore()
	acmeCtx := tenantContext(CompanyAcmeID)
	globexCtx := tenantContext(CompanyGlobexID)

	require.NoError(t, store.Create(acmeCtx, draftInvoice("inv_a", CompanyAcmeID, "AC")))
	require.NoError(t, store.Create(globexCtx, draftInvoice("inv_g", CompanyGlobexID, "GL")))

	// Get across tenants reads as not-found, never as a different error
	_, err := store.Get(globexCtx, "inv_a")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))

	got, err := store.Get(acmeCtx, "inv_a")
	require.NoError(t, err)
	assert.Equal(t, "inv_a", got.ID)

	acmeList, err := store.List(acmeCtx)
	require.NoError(t, err)
	require.Len(t, acmeList, 1)
	assert.Equal(t, "inv_a", acmeList[0].ID)

	globexList, err := store.List(globexCtx)
	require.NoError(t, err)
	require.Len(t, globexList, 1)
	assert.Equal(t, "inv_g", globexList[0].ID)
}

func TestInvoiceStoreListSortsByIssueDateDescending(t *testing.T) {
	store := NewInMemoryInvoiceStore()
	ctx := tenantContext(CompanyAcmeID)

	older := draftInvoice("inv_older", CompanyAcmeID, "AC")
	newer := draftInvoice("inv_newer", CompanyAcmeID, "AC")
	draft := draftInvoice("inv_draft", CompanyAcmeID, "AC")

	require.NoError(t, store.Create(ctx, older))
	require.NoError(t, store.Create(ctx, newer))
	require.NoError(t, store.Create(ctx, draft))

	_, err := store.Issue(ctx, "inv_older", time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = store.Issue(ctx, "inv_newer", time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "inv_newer", list[0].ID)
	assert.Equal(t, "inv_older", list[1].ID)
	assert.Equal(t, "inv_draft", list[2].ID, "undated drafts sort last")
}

func TestInvoiceStoreIssue(t *testing.T) {
	store := NewInMemoryInvoiceStore()
	ctx := types.SetUserID(tenantContext(CompanyAcmeID), "user_issuer")
	issuedAt := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Create(ctx, draftInvoice("inv_1", CompanyAcmeID, "AC")))

	issued, err := store.Issue(ctx, "inv_1", issuedAt)
	require.NoError(t, err)
	require.NotNil(t, issued.Number)
	assert.Equal(t, int64(1), *issued.Number)
	assert.Equal(t, types.InvoiceStatusIssued, issued.Status)
	require.NotNil(t, issued.IssueDate)
	assert.True(t, issued.IssueDate.Equal(issuedAt))
	assert.Equal(t, "user_issuer", issued.UpdatedBy, "issuance records the acting user")

	// Issuing again fails loudly; the stored invoice is untouched
	_, err = store.Issue(ctx, "inv_1", issuedAt.Add(time.Hour))
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))

	got, err := store.Get(ctx, "inv_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), *got.Number)
	assert.True(t, got.IssueDate.Equal(issuedAt))
}

func TestInvoiceStoreIssueNumbersPerTenantAndSeries(t *testing.T) {
	store := NewInMemoryInvoiceStore()
	acmeCtx := tenantContext(CompanyAcmeID)
	globexCtx := tenantContext(CompanyGlobexID)
	now := time.Now().UTC()

	require.NoError(t, store.Create(acmeCtx, draftInvoice("inv_ac_1", CompanyAcmeID, "AC")))
	require.NoError(t, store.Create(acmeCtx, draftInvoice("inv_ac_2", CompanyAcmeID, "AC")))
	require.NoError(t, store.Create(acmeCtx, draftInvoice("inv_acr_1", CompanyAcmeID, "ACR")))
	require.NoError(t, store.Create(globexCtx, draftInvoice("inv_gl_1", CompanyGlobexID, "AC")))

	first, err := store.Issue(acmeCtx, "inv_ac_1", now)
	require.NoError(t, err)
	second, err := store.Issue(acmeCtx, "inv_ac_2", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), *first.Number)
	assert.Equal(t, int64(2), *second.Number)

	// A different series starts its own sequence
	acr, err := store.Issue(acmeCtx, "inv_acr_1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), *acr.Number)

	// Another tenant's identically-named series is independent
	gl, err := store.Issue(globexCtx, "inv_gl_1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), *gl.Number)
}

func TestInvoiceStoreIssueConcurrent(t *testing.T) {
	store := NewInMemoryInvoiceStore()
	ctx := tenantContext(CompanyAcmeID)
	now := time.Now().UTC()

	const n = 50
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("inv_%03d", i)
		require.NoError(t, store.Create(ctx, draftInvoice(ids[i], CompanyAcmeID, "AC")))
	}

	var wg sync.WaitGroup
	results := make(chan int64, n)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			issued, err := store.Issue(ctx, id, now)
			if err != nil {
				t.Errorf("issue %s: %v", id, err)
				return
			}
			results <- *issued.Number
		}(id)
	}
	wg.Wait()
	close(results)

	// Numbers must be exactly 1..n with no duplicates and no gaps
	seen := make(map[int64]bool, n)
	for num := range results {
		assert.False(t, seen[num], "duplicate number %d", num)
		seen[num] = true
	}
	require.Len(t, seen, n)
	for i := int64(1); i <= n; i++ {
		assert.True(t, seen[i], "missing number %d", i)
	}
}

func TestInvoiceStoreCopiesOnReadAndWrite(t *testing.T) {
	store := NewInMemoryInvoiceStore()
	ctx := tenantContext(CompanyAcmeID)

	original := draftInvoice("inv_copy", CompanyAcmeID, "AC")
	require.NoError(t, store.Create(ctx, original))

	// Mutating the instance handed to Create must not leak into the store
	original.Notes = "mutated after create"
	original.Lines[0].Description = "mutated line"

	got, err := store.Get(ctx, "inv_copy")
	require.NoError(t, err)
	assert.Empty(t, got.Notes)
	assert.Equal(t, "Consulting", got.Lines[0].Description)

	// Mutating a returned snapshot must not leak either
	got.Lines[0].Description = "snapshot edit"
	again, err := store.Get(ctx, "inv_copy")
	require.NoError(t, err)
	assert.Equal(t, "Consulting", again.Lines[0].Description)
}

func TestStoresSeedAndReset(t *testing.T) {
	stores := NewStores()
	ctx := tenantContext(CompanyAcmeID)

	require.NoError(t, stores.Seed(ctx))

	invoices, err := stores.Invoices.List(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	issued, err := stores.Invoices.Get(ctx, InvoiceAcmeIssuedID)
	require.NoError(t, err)
	require.NotNil(t, issued.Number)
	assert.Equal(t, int64(1), *issued.Number)
	assert.True(t, issued.Total.Equal(decimal.RequireFromString("1452.00")))

	// Mutate, then Reset restores the fixed dataset
	require.NoError(t, stores.Invoices.Delete(ctx, InvoiceAcmeDraftID))
	require.NoError(t, stores.Reset(ctx))

	invoices, err = stores.Invoices.List(ctx)
	require.NoError(t, err)
	assert.Len(t, invoices, 2)
}
