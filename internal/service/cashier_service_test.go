package service

import (
	"context"
	"testing"

	"shopops/internal/apierror"
	"shopops/internal/dto"
	"shopops/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCashierSvc() (CashierService, *stubCashierRepo, *stubShopRepo) {
	shopRepo := newStubShopRepo()
	cashierRepo := newStubCashierRepo()
	svc := NewCashierService(cashierRepo, shopRepo)
	return svc, cashierRepo, shopRepo
}

func TestCreateCashier_DefaultsAndUserLink(t *testing.T) {
	svc, cashierRepo, shopRepo := buildCashierSvc()
	shop := seedShop(shopRepo, "Main St", "Springfield", nil)
	sessionUser := uuid.New()

	resp, err := svc.Create(context.Background(), Caller{UserID: sessionUser, Role: model.RoleManager}, dto.CreateCashierRequest{
		Name:   "  Carla  ",
		Email:  "carla@shopops.dev",
		ShopID: shop.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Carla", resp.Name)
	assert.True(t, resp.IsActive)
	assert.Equal(t, model.StatusAvailable, resp.Status)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, sessionUser.String(), *resp.UserID)

	stored := cashierRepo.cashiers[uuid.MustParse(resp.ID)]
	require.NotNil(t, stored.UserID)
	assert.Equal(t, sessionUser, *stored.UserID)
}

func TestCreateCashier_DuplicateEmail(t *testing.T) {
	svc, _, shopRepo := buildCashierSvc()
	shop := seedShop(shopRepo, "Main St", "Springfield", nil)
	caller := Caller{UserID: uuid.New(), Role: model.RoleManager}

	_, err := svc.Create(context.Background(), caller, dto.CreateCashierRequest{
		Name: "Carla", Email: "carla@shopops.dev", ShopID: shop.ID.String(),
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), caller, dto.CreateCashierRequest{
		Name: "Other", Email: "CARLA@shopops.dev", ShopID: shop.ID.String(),
	})
	assert.Equal(t, 409, apierror.StatusOf(err))
}

func TestCreateCashier_UnknownShop(t *testing.T) {
	svc, _, _ := buildCashierSvc()
	_, err := svc.Create(context.Background(), Caller{UserID: uuid.New(), Role: model.RoleManager}, dto.CreateCashierRequest{
		Name: "Carla", Email: "carla@shopops.dev", ShopID: uuid.NewString(),
	})
	assert.Equal(t, 400, apierror.StatusOf(err))
}

func TestCreateCashier_RequiresAuthentication(t *testing.T) {
	svc, _, shopRepo := buildCashierSvc()
	shop := seedShop(shopRepo, "Main St", "Springfield", nil)
	_, err := svc.Create(context.Background(), Caller{}, dto.CreateCashierRequest{
		Name: "Carla", Email: "carla@shopops.dev", ShopID: shop.ID.String(),
	})
	assert.Equal(t, 401, apierror.StatusOf(err))
}

func TestUpdateCashier_StatusAndActiveToggle(t *testing.T) {
	svc, cashierRepo, shopRepo := buildCashierSvc()
	shop := seedShop(shopRepo, "Main St", "Springfield", nil)
	caller := Caller{UserID: uuid.New(), Role: model.RoleManager}

	created, err := svc.Create(context.Background(), caller, dto.CreateCashierRequest{
		Name: "Carla", Email: "carla@shopops.dev", ShopID: shop.ID.String(),
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	inactive := false
	resp, err := svc.Update(context.Background(), caller, id, dto.UpdateCashierRequest{
		Name:     "Carla",
		Email:    "carla@shopops.dev",
		IsActive: &inactive,
		Status:   model.StatusOnBreak,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.Equal(t, model.StatusOnBreak, resp.Status)

	// User link survives every update
	stored := cashierRepo.cashiers[id]
	require.NotNil(t, stored.UserID)
	assert.Equal(t, caller.UserID, *stored.UserID)
}

func TestUpdateCashier_MoveToAnotherShop(t *testing.T) {
	svc, _, shopRepo := buildCashierSvc()
	shopA := seedShop(shopRepo, "Main St", "Springfield", nil)
	shopB := seedShop(shopRepo, "Side St", "Springfield", nil)
	caller := Caller{UserID: uuid.New(), Role: model.RoleManager}

	created, err := svc.Create(context.Background(), caller, dto.CreateCashierRequest{
		Name: "Carla", Email: "carla@shopops.dev", ShopID: shopA.ID.String(),
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), caller, uuid.MustParse(created.ID), dto.UpdateCashierRequest{
		Name:   "Carla",
		Email:  "carla@shopops.dev",
		ShopID: shopB.ID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ShopID)
	assert.Equal(t, shopB.ID.String(), *resp.ShopID)
}

func TestDeleteCashier_LinkedUserBlocks(t *testing.T) {
	svc, cashierRepo, shopRepo := buildCashierSvc()
	shop := seedShop(shopRepo, "Main St", "Springfield", nil)
	caller := Caller{UserID: uuid.New(), Role: model.RoleManager}

	created, err := svc.Create(context.Background(), caller, dto.CreateCashierRequest{
		Name: "Carla", Email: "carla@shopops.dev", ShopID: shop.ID.String(),
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	err = svc.Delete(context.Background(), caller, id)
	assert.Equal(t, 409, apierror.StatusOf(err))
	assert.Contains(t, cashierRepo.cashiers, id)

	// Unlink, then delete succeeds
	cashierRepo.cashiers[id].UserID = nil
	err = svc.Delete(context.Background(), caller, id)
	require.NoError(t, err)
	assert.NotContains(t, cashierRepo.cashiers, id)
}

func TestDeleteCashier_NotFound(t *testing.T) {
	svc, _, _ := buildCashierSvc()
	err := svc.Delete(context.Background(), Caller{UserID: uuid.New(), Role: model.RoleAdmin}, uuid.New())
	assert.Equal(t, 404, apierror.StatusOf(err))
}
