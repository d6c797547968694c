package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/shared"
)

type memoryDirectory struct {
	people map[string]*book.Person
}

func (m memoryDirectory) FindAccount(username string) (*book.Person, error) {
	if p, ok := m.people[username]; ok {
		return p, nil
	}
	return nil, &book.NotFoundError{Kind: book.KindPerson, Key: username}
}

func TestHashAndVerify(t *testing.T) {
	svc := NewService(bcrypt.MinCost)
	hash, err := svc.Hash("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.NoError(t, svc.Verify(hash, "s3cret"))
	require.ErrorIs(t, svc.Verify(hash, "wrong"), shared.ErrInvalidCredentials)
	require.ErrorIs(t, svc.Verify("", "s3cret"), shared.ErrInvalidCredentials)

	_, err = svc.Hash("")
	require.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(bcrypt.MinCost)
	hash, err := svc.Hash("pw")
	require.NoError(t, err)
	alice := &book.Person{Name: "Alice", Account: &book.Account{Username: "alice", PasswordHash: hash, Role: "tutor"}}
	dir := memoryDirectory{people: map[string]*book.Person{"alice": alice}}

	got, err := svc.Authenticate(context.Background(), dir, "alice", "pw")
	require.NoError(t, err)
	require.Same(t, alice, got)

	_, err = svc.Authenticate(context.Background(), dir, "alice", "nope")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), dir, "mallory", "pw")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestNewServiceClampsCost(t *testing.T) {
	require.Equal(t, bcrypt.DefaultCost, NewService(99).cost)
}
