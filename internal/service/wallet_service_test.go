package service

import (
	"context"
	"testing"

	"shopops/internal/apierror"
	"shopops/internal/dto"
	"shopops/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWalletSvc() (WalletService, *stubWalletRepo, *stubShopRepo, *stubUserRepo) {
	userRepo := newStubUserRepo()
	shopRepo := newStubShopRepo()
	walletRepo := newStubWalletRepo(shopRepo)
	svc := NewWalletService(walletRepo, shopRepo, nil, nil)
	return svc, walletRepo, shopRepo, userRepo
}

func TestTopUp_CreditsBalanceAndRecordsLedger(t *testing.T) {
	svc, walletRepo, shopRepo, userRepo := buildWalletSvc()
	admin := seedUser(userRepo, "Admin", "admin@shopops.dev", model.RoleAdmin)
	shop := seedShop(shopRepo, "Main St", "Springfield", nil)
	shop.WalletBalance = decimal.NewFromFloat(100.50)

	resp, err := svc.TopUp(context.Background(), Caller{UserID: admin.ID, Role: admin.Role}, shop.ID, dto.TopUpRequest{
		Amount:    decimal.NewFromFloat(25.25),
		Method:    model.MethodBankTransfer,
		Reference: "wire-0042",
	})
	require.NoError(t, err)
	assert.Equal(t, "125.75", resp.WalletBalance.StringFixed(2))

	// Exactly one CREDIT row, carrying the processor identity
	require.Len(t, walletRepo.txns, 1)
	txn := walletRepo.txns[0]
	assert.Equal(t, model.TxTypeCredit, txn.Type)
	assert.Equal(t, "25.25", txn.Amount.StringFixed(2))
	assert.Equal(t, model.MethodBankTransfer, txn.Method)
	assert.Equal(t, "wire-0042", txn.Reference)
	assert.Equal(t, shop.ID, txn.ShopID)
	assert.Equal(t, admin.ID, txn.ProcessedByID)
}

func TestTopUp_LedgerSumMatchesBalance(t *testing.T) {
	svc, walletRepo, shopRepo, userRepo := buildWalletSvc()
	admin := seedUser(userRepo, "Admin", "admin@shopops.dev", model.RoleAdmin)
	shop := seedShop(shopRepo, "Main St", "Springfield", nil)
	caller := Caller{UserID: admin.ID, Role: admin.Role}

	for _, amt := range []float64{10, 20.50, 0.01} {
		_, err := svc.TopUp(context.Background(), caller, shop.ID, dto.TopUpRequest{
			Amount:    decimal.NewFromFloat(amt),
			Method:    model.MethodCash,
			Reference: "cash drop",
		})
		require.NoError(t, err)
	}

	sum, err := walletRepo.SumByShop(context.Background(), shop.ID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(shop.WalletBalance), "ledger sum %s != balance %s", sum, shop.WalletBalance)
	assert.Equal(t, "30.51", shop.WalletBalance.StringFixed(2))
}

func TestTopUp_RejectsNonPositiveAmount(t *testing.T) {
	svc, walletRepo, shopRepo, userRepo := buildWalletSvc()
	admin := seedUser(userRepo, "Admin", "admin@shopops.dev", model.RoleAdmin)
	shop := seedShop(shopRepo, "Main St", "Springfield", nil)
	caller := Caller{UserID: admin.ID, Role: admin.Role}

	for _, amt := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-5)} {
		_, err := svc.TopUp(context.Background(), caller, shop.ID, dto.TopUpRequest{
			Amount:    amt,
			Method:    model.MethodCash,
			Reference: "bad",
		})
		assert.Equal(t, 400, apierror.StatusOf(err))
	}

	// No state change of any kind
	assert.True(t, shop.WalletBalance.IsZero())
	assert.Empty(t, walletRepo.txns)
}

func TestTopUp_UnknownShop(t *testing.T) {
	svc, walletRepo, _, userRepo := buildWalletSvc()
	admin := seedUser(userRepo, "Admin", "admin@shopops.dev", model.RoleAdmin)

	_, err := svc.TopUp(context.Background(), Caller{UserID: admin.ID, Role: admin.Role}, uuid.New(), dto.TopUpRequest{
		Amount:    decimal.NewFromFloat(10),
		Method:    model.MethodOnlinePayment,
		Reference: "ref-1",
	})
	assert.Equal(t, 404, apierror.StatusOf(err))
	assert.Empty(t, walletRepo.txns)
}

func TestTopUp_RequiresAuthentication(t *testing.T) {
	svc, _, shopRepo, _ := buildWalletSvc()
	shop := seedShop(shopRepo, "Main St", "Springfield", nil)

	_, err := svc.TopUp(context.Background(), Caller{}, shop.ID, dto.TopUpRequest{
		Amount:    decimal.NewFromFloat(10),
		Method:    model.MethodCash,
		Reference: "ref-1",
	})
	assert.Equal(t, 401, apierror.StatusOf(err))
}

func TestListTransactions_ScopedToProcessor(t *testing.T) {
	svc, _, shopRepo, userRepo := buildWalletSvc()
	alice := seedUser(userRepo, "Alice", "alice@shopops.dev", model.RoleAdmin)
	bob := seedUser(userRepo, "Bob", "bob@shopops.dev", model.RoleManager)
	shop := seedShop(shopRepo, "Main St", "Springfield", nil)

	_, err := svc.TopUp(context.Background(), Caller{UserID: alice.ID, Role: alice.Role}, shop.ID, dto.TopUpRequest{
		Amount: decimal.NewFromFloat(10), Method: model.MethodCash, Reference: "alice-1",
	})
	require.NoError(t, err)
	_, err = svc.TopUp(context.Background(), Caller{UserID: bob.ID, Role: bob.Role}, shop.ID, dto.TopUpRequest{
		Amount: decimal.NewFromFloat(20), Method: model.MethodCash, Reference: "bob-1",
	})
	require.NoError(t, err)

	txns, err := svc.ListTransactions(context.Background(), Caller{UserID: alice.ID, Role: alice.Role})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "alice-1", txns[0].Reference)
	assert.Equal(t, alice.ID.String(), txns[0].ProcessedByID)
}

func TestListTransactions_RequiresAuthentication(t *testing.T) {
	svc, _, _, _ := buildWalletSvc()
	_, err := svc.ListTransactions(context.Background(), Caller{})
	assert.Equal(t, 401, apierror.StatusOf(err))
}
