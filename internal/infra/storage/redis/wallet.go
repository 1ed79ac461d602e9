package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/suitrack/internal/pkg/types"
	"github.com/gabapcia/suitrack/internal/walletregistry"

	"github.com/redis/go-redis/v9"
)

// walletKeyPrefix is the Redis key namespace for watched wallet records.
const walletKeyPrefix = "walletregistry"

// walletRecordKey builds the Redis key holding one watched wallet record.
//
// Format: "walletregistry:record:{id}"
func walletRecordKey(id string) string {
	return fmt.Sprintf("%s:record:%s", walletKeyPrefix, id)
}

// walletAddressSetKey is the Redis set of watched addresses, stored lowercase
// so uniqueness checks ignore casing.
func walletAddressSetKey() string {
	return fmt.Sprintf("%s:addresses", walletKeyPrefix)
}

// walletIndexKey is the Redis sorted set ordering wallet ids by registration
// time, which keeps listings oldest first.
func walletIndexKey() string {
	return fmt.Sprintf("%s:index", walletKeyPrefix)
}

// walletRecord is the JSON shape persisted for one watched wallet.
type walletRecord struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r walletRecord) toWatchedWallet() walletregistry.WatchedWallet {
	return walletregistry.WatchedWallet{
		ID:        r.ID,
		Address:   types.Address(r.Address),
		Label:     r.Label,
		CreatedAt: r.CreatedAt,
	}
}

// SaveWallet implements walletregistry.WalletStorage.
//
// The lowercase address set is the uniqueness guard: SADD reports whether the
// address was new, so a duplicate in any casing fails before anything else is
// written.
func (c *client) SaveWallet(ctx context.Context, wallet walletregistry.WatchedWallet) error {
	normalizedAddress := strings.ToLower(wallet.Address.String())

	added, err := c.conn.SAdd(ctx, walletAddressSetKey(), normalizedAddress).Result()
	if err != nil {
		return err
	}
	if added == 0 {
		return walletregistry.ErrWalletAlreadyRegistered
	}

	record, err := json.Marshal(walletRecord{
		ID:        wallet.ID,
		Address:   wallet.Address.String(),
		Label:     wallet.Label,
		CreatedAt: wallet.CreatedAt,
	})
	if err != nil {
		return err
	}

	pipe := c.conn.TxPipeline()
	pipe.Set(ctx, walletRecordKey(wallet.ID), record, 0)
	pipe.ZAdd(ctx, walletIndexKey(), redis.Z{
		Score:  float64(wallet.CreatedAt.UnixNano()),
		Member: wallet.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		// roll back the uniqueness claim so the address can be retried
		c.conn.SRem(ctx, walletAddressSetKey(), normalizedAddress)
		return err
	}

	return nil
}

// DeleteWallet implements walletregistry.WalletStorage.
func (c *client) DeleteWallet(ctx context.Context, id string) error {
	wallet, err := c.GetWallet(ctx, id)
	if err != nil {
		return err
	}

	pipe := c.conn.TxPipeline()
	pipe.Del(ctx, walletRecordKey(id))
	pipe.ZRem(ctx, walletIndexKey(), id)
	pipe.SRem(ctx, walletAddressSetKey(), strings.ToLower(wallet.Address.String()))

	_, err = pipe.Exec(ctx)
	return err
}

// GetWallet implements walletregistry.WalletStorage.
func (c *client) GetWallet(ctx context.Context, id string) (walletregistry.WatchedWallet, error) {
	data, err := c.conn.Get(ctx, walletRecordKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return walletregistry.WatchedWallet{}, walletregistry.ErrWalletNotFound
		}
		return walletregistry.WatchedWallet{}, err
	}

	var record walletRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return walletregistry.WatchedWallet{}, err
	}

	return record.toWatchedWallet(), nil
}

// ListWallets implements walletregistry.WalletStorage. Records whose index
// entry outlived the record itself are skipped.
func (c *client) ListWallets(ctx context.Context) ([]walletregistry.WatchedWallet, error) {
	ids, err := c.conn.ZRange(ctx, walletIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	wallets := make([]walletregistry.WatchedWallet, 0, len(ids))
	for _, id := range ids {
		wallet, err := c.GetWallet(ctx, id)
		if err != nil {
			if errors.Is(err, walletregistry.ErrWalletNotFound) {
				continue
			}
			return nil, err
		}
		wallets = append(wallets, wallet)
	}

	return wallets, nil
}

// Compile-time assertion that *client satisfies walletregistry.WalletStorage.
var _ walletregistry.WalletStorage = new(client)
