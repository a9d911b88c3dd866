package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/DRSN-tech/online-sales/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJoao() *domain.Client {
	tel := int64(11987654321)
	number := int32(123)

	return &domain.Client{
		Name:          "João Silva",
		CPF:           "12345678900",
		Tel:           &tel,
		Email:         "joao.silva@example.com",
		Address:       "Rua das Flores, 123",
		AddressNumber: &number,
		City:          "São Paulo",
		Estate:        "SP",
	}
}

func newClientUseCases() (*ClientRegistration, *ClientSearch, *memClientRepo) {
	repo := newMemClientRepo()
	log := logger.Nop()
	return NewClientRegistration(repo, log), NewClientSearch(repo, log), repo
}

func TestClientRegisterThenSearchByID(t *testing.T) {
	ctx := context.Background()
	registration, search, _ := newClientUseCases()

	input := newJoao()
	input.ID = "client-supplied"

	created, err := registration.Register(ctx, input)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.NotEqual(t, "client-supplied", created.ID)
	assert.Equal(t, "client-supplied", input.ID)

	found, err := search.SearchByID(ctx, created.ID)
	require.NoError(t, err)

	expected := newJoao()
	expected.ID = created.ID
	assert.Equal(t, expected, found)
}

func TestClientRegisterDuplicateCPF(t *testing.T) {
	ctx := context.Background()
	registration, _, _ := newClientUseCases()

	_, err := registration.Register(ctx, newJoao())
	require.NoError(t, err)

	second := newJoao()
	second.Email = "other@example.com"
	_, err = registration.Register(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrDuplicateKey))
}

func TestClientUpdate(t *testing.T) {
	ctx := context.Background()
	registration, search, _ := newClientUseCases()

	created, err := registration.Register(ctx, newJoao())
	require.NoError(t, err)

	change := newJoao()
	change.ID = "something-else"
	change.Name = "João S."
	change.City = "Campinas"

	updated, err := registration.Update(ctx, change)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "12345678900", updated.CPF)
	assert.Equal(t, "João S.", updated.Name)
	assert.Equal(t, "Campinas", updated.City)

	byCPF, err := search.SearchByCPF(ctx, "12345678900")
	require.NoError(t, err)
	assert.Equal(t, updated, byCPF)
}

func TestClientUpdateUnknownCPF(t *testing.T) {
	registration, _, _ := newClientUseCases()

	_, err := registration.Update(context.Background(), newJoao())
	require.Error(t, err)

	var notFound *e.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, domain.ClientEntity, notFound.Entity)
	assert.Equal(t, "cpf", notFound.Field)
	assert.Equal(t, "12345678900", notFound.Value)
}

func TestClientDelete(t *testing.T) {
	ctx := context.Background()
	registration, search, _ := newClientUseCases()

	created, err := registration.Register(ctx, newJoao())
	require.NoError(t, err)
	assert.True(t, search.IsRegistered(ctx, created.ID))

	require.NoError(t, registration.Delete(ctx, created.ID))

	_, err = search.SearchByID(ctx, created.ID)
	assert.True(t, errors.Is(err, e.ErrNotFound))
	assert.False(t, search.IsRegistered(ctx, created.ID))

	// повторное удаление не является ошибкой
	assert.NoError(t, registration.Delete(ctx, created.ID))
}

func TestClientIsRegisteredSwallowsStoreErrors(t *testing.T) {
	_, search, repo := newClientUseCases()
	repo.findErr = errors.New("connection refused")

	assert.False(t, search.IsRegistered(context.Background(), "any"))
}

func TestClientSearchByCPFNotFound(t *testing.T) {
	_, search, _ := newClientUseCases()

	_, err := search.SearchByCPF(context.Background(), "000")
	require.Error(t, err)
	assert.EqualError(t, err, "Client was not found for parameters {cpf=000}")
}

func TestClientSearchRejectsUnknownSortField(t *testing.T) {
	_, search, _ := newClientUseCases()

	_, err := search.Search(context.Background(), NewPageRequest(0, 10, []SortOrder{{Field: "password"}}))
	assert.True(t, errors.Is(err, e.ErrInvalidPageRequest))
}

func TestClientSearchRejectsOverflowingPage(t *testing.T) {
	_, search, _ := newClientUseCases()

	_, err := search.Search(context.Background(), NewPageRequest(4611686018427387904, MaxPageSize, nil))
	assert.True(t, errors.Is(err, e.ErrInvalidPageRequest))
}

func TestClientSearchNormalizesPage(t *testing.T) {
	ctx := context.Background()
	registration, search, _ := newClientUseCases()

	_, err := registration.Register(ctx, newJoao())
	require.NoError(t, err)

	page, err := search.Search(ctx, NewPageRequest(-3, 0, []SortOrder{{Field: "name", Desc: true}}))
	require.NoError(t, err)
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, DefaultPageSize, page.Size)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Len(t, page.Content, 1)
}
