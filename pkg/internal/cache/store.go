package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

var S *ristretto_store.RistrettoStore

func NewStore() error {
	inner, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10_000,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return fmt.Errorf("unable to setup cache: %v", err)
	}

	S = ristretto_store.NewRistretto(inner)
	return nil
}
