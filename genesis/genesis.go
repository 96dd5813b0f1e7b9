// Package genesis generates the storage slots and values that seed the
// ValidatorSet smart contract at chain genesis from a given validator
// list, bypassing the contract's constructor and initializer.
package genesis

import (
	"math"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	// ValidatorManagerAccount is the genesis address of the ERC1967 proxy.
	ValidatorManagerAccount = common.HexToAddress("0x0000000000000000000000000000000000002000")
	// ValidatorManagerImplAccount is the genesis address of the logic
	// contract behind the proxy.
	ValidatorManagerImplAccount = common.HexToAddress("0x0000000000000000000000000000000000002001")
)

// GenerateStorageData generates proxy storage slots and values for a given
// validator list. The returned map is intended for the proxy account; it
// contains the EIP-1967 and ERC-7201 slots plus the contract's own state.
func GenerateStorageData(validators []Validator, owner, implAddress common.Address) (map[common.Hash]common.Hash, error) {
	set, err := NewValidatorSet(validators)
	if err != nil {
		return nil, err
	}
	return GenerateFromValidatorSet(set, owner, implAddress)
}

// GenerateFromValidatorSet generates proxy storage from a validated set.
//
// Storage layout (UUPS upgradeable, OZ 5.x with ERC-7201 namespaced
// storage):
//
//	EIP-1967 impl slot       : implementation address
//	ERC-7201 Ownable         : _owner
//	ERC-7201 ReentrancyGuard : _status = 1 (NOT_ENTERED)
//	ERC-7201 Initializable   : _initialized = 1, _initializing = false
//	ERC-7201 AccessControl   : owner role grants
//	Slot 0 : _validatorAddresses._inner._values  (EnumerableSet)
//	Slot 1 : _validatorAddresses._inner._positions
//	Slot 2 : _validators mapping(address => ValidatorInfo)
//	Slot 3 : _totalPower
func GenerateFromValidatorSet(set *ValidatorSet, owner, implAddress common.Address) (map[common.Hash]common.Hash, error) {
	storage := make(map[common.Hash]common.Hash)

	storage[EIP1967ImplSlot] = addressWord(implAddress)
	storage[OwnableSlot] = addressWord(owner)
	storage[ReentrancyGuardSlot] = u64Word(1)

	// Both Initializable fields pack into one slot:
	// uint64 _initialized || bool _initializing. _initialized = 1 occupies
	// the low 8 bytes; _initializing = false is already zero.
	storage[InitializableSlot] = u64Word(1)

	setAccessControlRoles(storage, owner)

	// Contract state: sequential slots starting at 0. The EnumerableSet
	// occupies slots 0-1.
	setValidatorAddressesSet(storage, set, uint256.NewInt(0))
	setValidatorEntriesMapping(storage, set, uint256.NewInt(2))

	totalPowerSlot := u64Word(3)
	storage[totalPowerSlot] = u64Word(set.TotalPower())

	return storage, nil
}

// GenerateImplStorage generates storage for the implementation account at
// genesis. The only thing needed is to disable initializers so nobody can
// call initialize() on the bare implementation, which mimics what
// _disableInitializers() does in a constructor that never runs during
// genesis alloc.
func GenerateImplStorage() map[common.Hash]common.Hash {
	return map[common.Hash]common.Hash{
		// _initialized = type(uint64).max
		InitializableSlot: u64Word(math.MaxUint64),
	}
}
