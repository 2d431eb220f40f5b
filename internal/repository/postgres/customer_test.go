package postgres

import (
	"context"
	"testing"

	"boardcamp-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCustomerRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := func() *domain.Customer {
		return &domain.Customer{
			Name:     "Joana",
			Phone:    "21998899222",
			CPF:      "01234567890",
			Birthday: "1992-10-05",
		}
	}

	t.Run("Success", func(t *testing.T) {
		c := customer()
		mock.ExpectQuery("INSERT INTO customers").
			WithArgs(c.Name, c.Phone, c.CPF, c.Birthday).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, c)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), c.ID)
	})

	t.Run("Duplicate CPF maps to ErrDuplicate", func(t *testing.T) {
		c := customer()
		mock.ExpectQuery("INSERT INTO customers").
			WithArgs(c.Name, c.Phone, c.CPF, c.Birthday).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, c)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestCustomerRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "phone", "cpf", "birthday"}).
			AddRow(1, "Joana", "21998899222", "01234567890", "1992-10-05")
		mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		c, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Joana", c.Name)
		assert.Equal(t, "1992-10-05", c.Birthday)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "cpf", "birthday"}))

		c, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, c)
	})
}

func TestCustomerRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := &domain.Customer{ID: 1, Name: "Joana", Phone: "21998899222", CPF: "01234567890", Birthday: "1992-10-05"}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE customers SET").
			WithArgs(c.Name, c.Phone, c.CPF, c.Birthday, c.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, c)
		assert.NoError(t, err)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE customers SET").
			WithArgs(c.Name, c.Phone, c.CPF, c.Birthday, c.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, c)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
