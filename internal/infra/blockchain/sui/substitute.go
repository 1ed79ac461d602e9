package sui

import (
	"strings"

	"github.com/gabapcia/suitrack/internal/walletview"
)

// The substitute dataset answers queries when the node is unreachable or the
// client runs in offline mode. Content is fixed so downstream behavior stays
// deterministic: one native balance, two custom-coin balances with full
// metadata, four collectibles whose display/content shapes differ on purpose,
// and two transactions (one Transfer, one ContractCall).
//
// Every function returns a fresh value; callers own what they receive.

// Fixed timestamps for the substitute transactions (2023-11-14T22:13:20Z and
// one hour earlier).
const (
	substituteTransferTimestampMs     = int64(1700000000000)
	substituteContractCallTimestampMs = int64(1699996400000)
)

func substituteID(digit string) string {
	return "0x" + strings.Repeat(digit, 64)
}

func float64Ptr(f float64) *float64 { return &f }

// substituteNativeBalance is the native-coin answer for suix_getBalance.
func substituteNativeBalance() walletview.Balance {
	return walletview.Balance{
		CoinType:        "0x2::sui::SUI",
		TotalBalance:    "10000000000",
		CoinObjectCount: 3,
		Metadata: &walletview.CoinMetadata{
			Symbol:   "SUI",
			Name:     "Sui Token",
			Decimals: 9,
			Price:    float64Ptr(1.23),
		},
	}
}

// substituteBalances is the full-balance answer for suix_getAllBalances: the
// native balance plus two custom coins, each with complete metadata and a
// USD price.
func substituteBalances() []walletview.Balance {
	return []walletview.Balance{
		substituteNativeBalance(),
		{
			CoinType:        "0x5d4b302506645c37ff133b98c4b50a5ae14841659738d6d733d59d0d217a93bf::coin::COIN",
			TotalBalance:    "50000000",
			CoinObjectCount: 1,
			Metadata: &walletview.CoinMetadata{
				Symbol:   "USDC",
				Name:     "USD Coin",
				Decimals: 6,
				Price:    float64Ptr(1.00),
			},
		},
		{
			CoinType:        "0x6e8d5df2c5111bc95d5a1c17d9e42b1385067970d7ad03742c5c8f6e1f57f5bc::coin::COIN",
			TotalBalance:    "250000000",
			CoinObjectCount: 2,
			Metadata: &walletview.CoinMetadata{
				Symbol:   "WETH",
				Name:     "Wrapped Ethereum",
				Decimals: 8,
				Price:    float64Ptr(3050.75),
			},
		},
	}
}

// substituteObjectPage is the owned-object answer for suix_getOwnedObjects.
// The four collectibles deliberately cover the normalization edge cases:
// both display and content (with a conflicting name), content only, display
// only, and neither name anywhere.
func substituteObjectPage() walletview.ObjectPage {
	return walletview.ObjectPage{
		Data: []walletview.OwnedObject{
			{
				ObjectID: substituteID("5"),
				Type:     "0x3c6ff47f2bc6e7f8a77e4d2fc5f36c08::capy::Capy",
				Display: &walletview.ObjectDisplay{
					Name:        "Capy",
					Description: "A cute Capy on the Sui network",
					ImageURL:    "https://assets.suifrens.com/capys/generated/1234.png",
					Creator:     "Sui Frens",
				},
				Content: &walletview.ObjectFields{
					Name:        "Capy #1234",
					Description: "A cute Capy NFT on the Sui network",
					URL:         "https://assets.suifrens.com/capys/generated/1234.png",
					Attributes: []walletview.ObjectAttribute{
						{TraitType: "Background", Value: "Blue"},
						{TraitType: "Body", Value: "Brown"},
						{TraitType: "Eyes", Value: "Happy"},
						{TraitType: "Accessory", Value: "Sunglasses"},
					},
				},
			},
			{
				ObjectID: substituteID("a"),
				Type:     "0x5c50a2a1e4e8c9e17e5d1f7ea1b8e8a0::suimon::SuiMon",
				Content: &walletview.ObjectFields{
					Name:        "SuiMon #42",
					Description: "A digital monster on the Sui blockchain",
					URL:         "https://example.com/suimon/42.png",
					Attributes: []walletview.ObjectAttribute{
						{TraitType: "Element", Value: "Fire"},
						{TraitType: "Level", Value: "5"},
					},
				},
			},
			{
				ObjectID: substituteID("e"),
				Type:     "0x7a6c9e3f7fe7fc293a3f968defea51ad::domain::Domain",
				Display: &walletview.ObjectDisplay{
					Name:        "mysuidomain.sui",
					Description: "A domain name on the Sui network",
					ImageURL:    "https://example.com/domains/mysuidomain.png",
					Creator:     "Sui Domains",
				},
			},
			{
				ObjectID: substituteID("1"),
				Type:     "0x9e5682e842c9c0e39e3389a45b65c3f1::artwork::DigitalArt",
				Content: &walletview.ObjectFields{
					Description: "Digital artwork by an unnamed artist",
					URL:         "https://example.com/art/abstract_waves_7.jpg",
				},
			},
		},
		NextCursor:  nil,
		HasNextPage: false,
	}
}

// substituteTransactionPage is the transaction answer for
// suix_queryTransactionBlocks: one balance-change transaction and one
// contract call.
func substituteTransactionPage() walletview.TransactionPage {
	return walletview.TransactionPage{
		Data: []walletview.Transaction{
			{
				Digest:      substituteID("b"),
				TimestampMs: substituteTransferTimestampMs,
				Effects: &walletview.TransactionEffects{
					Events: []walletview.TransactionEvent{
						{Type: "0x2::coin::CoinBalanceChange"},
					},
				},
			},
			{
				Digest:      substituteID("c"),
				TimestampMs: substituteContractCallTimestampMs,
				Effects: &walletview.TransactionEffects{
					Events: []walletview.TransactionEvent{
						{Type: "0x3::example::MoveEvent"},
					},
				},
			},
		},
		NextCursor:  nil,
		HasNextPage: false,
	}
}
