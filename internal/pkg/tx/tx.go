package tx

import (
	"context"
	"fmt"
	"net/http"
)

type key string

const KeyTx = key("tx")

type DBTxer interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DBTxer
}

// TxMiddlewareHTTP attaches the transactional repository to the request
// context so handlers can open a transaction scope with TxExecute.
func TxMiddlewareHTTP(db DBTxer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: db})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("transaction scope is not attached to context")
	}

	return t.DbRepo.WithTx(ctx, cb)
}
