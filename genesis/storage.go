// Storage layout and encoding for the upgradeable ValidatorManager
// contract. The ERC1967 proxy's storage contains:
//   - the EIP-1967 implementation slot pointing to the logic contract
//   - ERC-7201 namespaced slots for OwnableUpgradeable,
//     ReentrancyGuardUpgradeable, Initializable and AccessControlUpgradeable
//   - sequential slots 0..3 for the contract's own state variables
package genesis

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// ERC-7201 namespace identifiers (OZ 5.4.0 source).
const (
	OwnableNamespace         = "openzeppelin.storage.Ownable"
	ReentrancyGuardNamespace = "openzeppelin.storage.ReentrancyGuard"
	InitializableNamespace   = "openzeppelin.storage.Initializable"
	AccessControlNamespace   = "openzeppelin.storage.AccessControl"
)

// Pre-computed ERC-7201 slots, pinned against OZ 5.4.0. The golden tests
// re-derive them from ERC7201Slot.
var (
	OwnableSlot         = common.HexToHash("0x9016d09d72d40fdae2fd8ceac6b6234c7706214fd39c1cd1e609a0528c199300")
	ReentrancyGuardSlot = common.HexToHash("0x9b779b17422d0df92223018b32b4d1fa46e071723d6817e2486d003becc55f00")
	InitializableSlot   = common.HexToHash("0xf0c57e16840df040f15088dc2f81fe391c3923bec73e23a9662efc9c229c6a00")
	AccessControlSlot   = common.HexToHash("0x02dd7bc7dec4dceedda775e58dd541e08a116c6c53815c0bd028192f7b626800")

	// ValidatorManagerRole is keccak256("VALIDATOR_MANAGER_ROLE"), matching
	// the Solidity constant.
	ValidatorManagerRole = common.HexToHash("0x87421e189bd94dc1673f0d5255fa9f0cb8ff65bb74e34e0a80b07e9f0b4e34d5")

	// EIP1967ImplSlot is bytes32(uint256(keccak256("eip1967.proxy.implementation")) - 1).
	EIP1967ImplSlot = common.HexToHash("0x360894a13ba1a3210667c828492db98dca3e2076cc3735a920a3ca505d382bbc")
)

// ERC7201Slot computes the storage slot for a namespace id string:
//
//	keccak256(abi.encode(uint256(keccak256(id)) - 1)) & ~bytes32(uint256(0xff))
func ERC7201Slot(namespace string) common.Hash {
	inner := new(uint256.Int).SetBytes(crypto.Keccak256([]byte(namespace)))
	inner.Sub(inner, uint256.NewInt(1))
	innerBytes := inner.Bytes32()

	outer := new(uint256.Int).SetBytes(crypto.Keccak256(innerBytes[:]))
	outer.And(outer, new(uint256.Int).Not(uint256.NewInt(0xff)))
	return outer.Bytes32()
}

// MappingSlot computes the slot of mapping(key => value) at baseSlot, with
// the key encoded as bytes32.
func MappingSlot(key common.Hash, baseSlot *uint256.Int) common.Hash {
	base := baseSlot.Bytes32()
	return common.BytesToHash(crypto.Keccak256(key.Bytes(), base[:]))
}

// ArrayElementSlot computes the slot of element index of the dynamic array
// at baseSlot.
func ArrayElementSlot(baseSlot *uint256.Int, index uint64) common.Hash {
	base := baseSlot.Bytes32()
	element := new(uint256.Int).SetBytes(crypto.Keccak256(base[:]))
	element.AddUint64(element, index)
	return element.Bytes32()
}

// StructFieldSlot computes the slot of the field at fieldIndex (0-based)
// within a struct whose storage begins at baseSlot.
func StructFieldSlot(baseSlot common.Hash, fieldIndex uint64) common.Hash {
	field := new(uint256.Int).SetBytes(baseSlot.Bytes())
	field.AddUint64(field, fieldIndex)
	return field.Bytes32()
}

// AccessControlHasRoleSlot computes the slot of
// `_roles[role].hasRole[account]` in the AccessControl ERC-7201 namespace.
//
// Layout:
//
//	_roles mapping at AccessControlSlot (base)
//	RoleData { mapping(address => bool) hasRole, bytes32 adminRole }
//	hasRole slot = keccak256(account_padded || keccak256(role || AccessControlSlot))
func AccessControlHasRoleSlot(role common.Hash, account common.Address) common.Hash {
	acBase := new(uint256.Int).SetBytes(AccessControlSlot.Bytes())
	roleDataBase := MappingSlot(role, acBase)
	// hasRole is struct field 0, so its mapping sits at the RoleData base.
	hasRoleBase := new(uint256.Int).SetBytes(roleDataBase.Bytes())
	return MappingSlot(addressWord(account), hasRoleBase)
}

// addressWord left-pads an address to bytes32, like Solidity's
// abi.encode(address).
func addressWord(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}

func u64Word(x uint64) common.Hash {
	return uint256.NewInt(x).Bytes32()
}

// setValidatorAddressesSet writes the EnumerableSet holding validator
// addresses: the `_inner._values` array at baseSlot, and the
// `_inner._positions` mapping (1-based indices) at baseSlot+1.
func setValidatorAddressesSet(storage map[common.Hash]common.Hash, set *ValidatorSet, baseSlot *uint256.Int) {
	baseHash := baseSlot.Bytes32()
	addresses := set.OrderedAddresses()

	lengthSlot := StructFieldSlot(baseHash, 0)
	storage[lengthSlot] = u64Word(uint64(len(addresses)))

	positionsBase := new(uint256.Int).SetBytes(StructFieldSlot(baseHash, 1).Bytes())

	for index, address := range addresses {
		elementSlot := ArrayElementSlot(baseSlot, uint64(index))
		storage[elementSlot] = addressWord(address)

		positionSlot := MappingSlot(addressWord(address), positionsBase)
		storage[positionSlot] = u64Word(uint64(index) + 1)
	}
}

// setValidatorEntriesMapping writes the `_validators` mapping: for each
// validator, three consecutive slots holding the two key limbs and the
// power.
func setValidatorEntriesMapping(storage map[common.Hash]common.Hash, set *ValidatorSet, baseSlot *uint256.Int) {
	for _, val := range set.Validators() {
		entrySlot := MappingSlot(addressWord(val.Key.Address()), baseSlot)

		storage[entrySlot] = val.Key.X
		storage[StructFieldSlot(entrySlot, 1)] = val.Key.Y
		storage[StructFieldSlot(entrySlot, 2)] = u64Word(val.Power)
	}
}

// setAccessControlRoles grants the owner DEFAULT_ADMIN_ROLE (0x00) and
// VALIDATOR_MANAGER_ROLE at genesis.
func setAccessControlRoles(storage map[common.Hash]common.Hash, owner common.Address) {
	trueWord := u64Word(1)
	defaultAdminRole := common.Hash{}

	storage[AccessControlHasRoleSlot(defaultAdminRole, owner)] = trueWord
	storage[AccessControlHasRoleSlot(ValidatorManagerRole, owner)] = trueWord
}
