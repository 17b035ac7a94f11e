package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merolaashraf15-source/MED/internal/app/entity"
	err_storage "github.com/merolaashraf15-source/MED/internal/app/storage/api/errors"
	"github.com/merolaashraf15-source/MED/internal/app/storage/memory"
)

func createFixtureOrders(t *testing.T, s *memory.Storage) (alice, bob, carol entity.Order) {
	t.Helper()

	creates := []entity.CreateOrder{
		{CustomerName: "Alice Smith", Phone: "1234567890", Medicine: "Aspirin 500mg x2"},
		{CustomerName: "Bob Jones", Phone: "+7 (999) 000-1122", Medicine: "Ibuprofen 200mg"},
		{CustomerName: "Carol White", Phone: "5550001111", Medicine: "Paracetamol"},
	}

	created := make(entity.Orders, 0, len(creates))
	for _, create := range creates {
		// keeps CreatedAt strictly increasing so the expected ordering
		// does not depend on the ID tiebreak
		time.Sleep(5 * time.Millisecond)

		order, err := s.CreateOrder(context.Background(), create)
		require.NoError(t, err)
		created = append(created, order)
	}

	return created[0], created[1], created[2]
}

func orderIDs(orders entity.Orders) []string {
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	return ids
}

func TestCreateOrder(t *testing.T) {
	s := memory.NewStorage()

	order, err := s.CreateOrder(context.Background(), entity.CreateOrder{
		CustomerName: "Alice Smith",
		Phone:        "1234567890",
		Medicine:     "Aspirin 500mg x2",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())

	stored, err := s.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, stored)
}

func TestGetOrderNotFound(t *testing.T) {
	s := memory.NewStorage()

	_, err := s.GetOrder(context.Background(), "ac2a4811-4f10-487f-bde3-e39a14af7cd8")
	assert.ErrorIs(t, err, err_storage.ErrOrderNotFound)
}

func TestListOrdersSearch(t *testing.T) {
	s := memory.NewStorage()
	alice, bob, carol := createFixtureOrders(t, s)

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{
			name:   "empty search returns all",
			search: "",
			want:   []string{carol.ID, bob.ID, alice.ID},
		},
		{
			name:   "blank search returns all",
			search: "   ",
			want:   []string{carol.ID, bob.ID, alice.ID},
		},
		{
			name:   "medicine match is case-insensitive",
			search: "ASPIRIN",
			want:   []string{alice.ID},
		},
		{
			name:   "customer name match is case-insensitive",
			search: "alice",
			want:   []string{alice.ID},
		},
		{
			name:   "phone match is a raw substring",
			search: "(999)",
			want:   []string{bob.ID},
		},
		{
			name:   "search term is trimmed",
			search: "  paracetamol ",
			want:   []string{carol.ID},
		},
		{
			name:   "union over fields",
			search: "o",
			want:   []string{carol.ID, bob.ID},
		},
		{
			name:   "no match",
			search: "penicillin",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := s.ListOrders(context.Background(), entity.OrderQuery{
				Search: tt.search,
				Page:   1,
				Limit:  10,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, orderIDs(page.Orders))
			assert.Equal(t, len(tt.want), page.Total)
		})
	}
}

func TestListOrdersPagination(t *testing.T) {
	s := memory.NewStorage()
	alice, bob, carol := createFixtureOrders(t, s)
	all := []string{carol.ID, bob.ID, alice.ID}

	tests := []struct {
		name  string
		page  int
		limit int
		want  []string
	}{
		{name: "first page", page: 1, limit: 2, want: all[:2]},
		{name: "second page", page: 2, limit: 2, want: all[2:]},
		{name: "out-of-range page is empty", page: 5, limit: 2, want: []string{}},
		{name: "limit covers everything", page: 1, limit: 10, want: all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := s.ListOrders(context.Background(), entity.OrderQuery{
				Page:  tt.page,
				Limit: tt.limit,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, orderIDs(page.Orders))
			assert.Equal(t, len(all), page.Total, "total must count all matches before pagination")
		})
	}
}

func TestListOrdersPagesReconstructSet(t *testing.T) {
	s := memory.NewStorage()
	createFixtureOrders(t, s)

	seen := make(map[string]struct{})
	var collected []string
	for page := 1; page <= 3; page++ {
		result, err := s.ListOrders(context.Background(), entity.OrderQuery{Page: page, Limit: 1})
		require.NoError(t, err)
		require.Equal(t, 3, result.Total)

		for _, order := range result.Orders {
			_, duplicate := seen[order.ID]
			require.False(t, duplicate, "page slices must not overlap")
			seen[order.ID] = struct{}{}
			collected = append(collected, order.ID)
		}
	}

	full, err := s.ListOrders(context.Background(), entity.OrderQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, orderIDs(full.Orders), collected)
}

func TestListOrdersStableOrdering(t *testing.T) {
	s := memory.NewStorage()
	createFixtureOrders(t, s)

	first, err := s.ListOrders(context.Background(), entity.OrderQuery{Page: 1, Limit: 10})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := s.ListOrders(context.Background(), entity.OrderQuery{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, orderIDs(first.Orders), orderIDs(next.Orders))
	}
}

func TestUpdateOrder(t *testing.T) {
	s := memory.NewStorage()
	alice, _, _ := createFixtureOrders(t, s)

	status := entity.StatusProcessing
	updated, err := s.UpdateOrder(context.Background(), alice.ID, entity.UpdateOrder{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusProcessing, updated.Status)
	assert.Equal(t, alice.ID, updated.ID)
	assert.Equal(t, alice.CustomerName, updated.CustomerName)
	assert.Equal(t, alice.Phone, updated.Phone)
	assert.Equal(t, alice.Medicine, updated.Medicine)
	assert.True(t, alice.CreatedAt.Equal(updated.CreatedAt))

	stored, err := s.GetOrder(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdateOrderAllFields(t *testing.T) {
	s := memory.NewStorage()
	alice, _, _ := createFixtureOrders(t, s)

	name := "Alice Cooper"
	phone := "0987654321"
	medicine := "Vitamin D3"
	status := entity.StatusCompleted

	updated, err := s.UpdateOrder(context.Background(), alice.ID, entity.UpdateOrder{
		CustomerName: &name,
		Phone:        &phone,
		Medicine:     &medicine,
		Status:       &status,
	})
	require.NoError(t, err)

	assert.Equal(t, name, updated.CustomerName)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, medicine, updated.Medicine)
	assert.Equal(t, status, updated.Status)
	assert.Equal(t, alice.ID, updated.ID)
	assert.True(t, alice.CreatedAt.Equal(updated.CreatedAt))
}

func TestUpdateOrderNotFound(t *testing.T) {
	s := memory.NewStorage()

	status := entity.StatusCancelled
	_, err := s.UpdateOrder(context.Background(), "missing-id", entity.UpdateOrder{Status: &status})
	assert.ErrorIs(t, err, err_storage.ErrOrderNotFound)
}

func TestDeleteOrder(t *testing.T) {
	s := memory.NewStorage()
	alice, _, _ := createFixtureOrders(t, s)

	deleted, err := s.DeleteOrder(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetOrder(context.Background(), alice.ID)
	assert.ErrorIs(t, err, err_storage.ErrOrderNotFound)

	deleted, err = s.DeleteOrder(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "deleting an already-deleted id reports false")

	page, err := s.ListOrders(context.Background(), entity.OrderQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}
