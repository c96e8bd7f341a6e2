package taxlot

import (
	"fmt"
	"strings"
)

// Kind is the semantic category of a transaction.
//
// The set is closed: the zero value is not a valid kind and any new kind must
// be added to this list.
type Kind int

const (
	// Trade disposes of one asset to acquire another (swap, exchange, sale).
	Trade Kind = iota + 1
	// Stake is a staking, farming or yield event, taxed as income.
	Stake
	// Reward is a reward or interest payment, taxed as income.
	Reward
	// Airdrop is an unsolicited distribution, taxed as income.
	Airdrop
	// Transfer moves an asset without disposal.
	Transfer
	// AssetCreation mints a new asset.
	AssetCreation
	// AssetDestruction burns an asset.
	AssetDestruction
	// Loan lends or borrows an asset.
	Loan
)

var kindNames = [...]string{
	Trade:            "trade",
	Stake:            "stake",
	Reward:           "reward",
	Airdrop:          "airdrop",
	Transfer:         "transfer",
	AssetCreation:    "asset-creation",
	AssetDestruction: "asset-destruction",
	Loan:             "loan",
}

// Kinds lists every valid kind in declaration order.
func Kinds() []Kind {
	return []Kind{Trade, Stake, Reward, Airdrop, Transfer, AssetCreation, AssetDestruction, Loan}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= Trade && k <= Loan }

// IsIncome reports whether the full value of a transaction of this kind is
// ordinary income.
func (k Kind) IsIncome() bool { return k == Reward || k == Airdrop || k == Stake }

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind parses a kind name. It is case insensitive and accepts '_' in
// place of '-', so both "asset-creation" and "ASSET_CREATION" are valid.
func ParseKind(s string) (Kind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
